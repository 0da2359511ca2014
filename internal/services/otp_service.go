package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"novaapp/internal/repositories"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoCodeIssued = errors.New("no otp issued")
	ErrCodeExpired  = errors.New("otp expired")
	ErrCodeInvalid  = errors.New("otp invalid")
)

// A code stays valid for 10 minutes from issuance. There is no attempt
// counter and no lockout: retries are unbounded within the window.
const otpValidityWindow = 10 * time.Minute

// OtpService drives the OTP cycle for MPIN resets: issue a 4-digit code by
// email, validate a candidate against it, set the new MPIN.
//
// Known gap: otp_code/otp_issued_at are never cleared after a successful
// validation or MPIN change, so a used code keeps validating until its
// window lapses or a new issue overwrites it.
type OtpService struct {
	UserRepo repositories.UserRepository
	Emails   EmailService
}

func NewOtpService(userRepo repositories.UserRepository, emails EmailService) *OtpService {
	return &OtpService{UserRepo: userRepo, Emails: emails}
}

// generateCode returns a uniform 4-digit code in [1000, 9999].
func (s *OtpService) generateCode() string {
	src := rand.NewSource(time.Now().UnixNano())
	rnd := rand.New(src)
	return fmt.Sprintf("%d", 1000+rnd.Intn(9000))
}

// IssueOtp generates a code, emails it and persists it with its issue time.
// The code travels only by email, never in the API response. An email relay
// failure is fatal and leaves the stored OTP state untouched.
func (s *OtpService) IssueOtp(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code := s.generateCode()
	if err := s.Emails.SendOtpEmail(user.Email, code); err != nil {
		return fmt.Errorf("otp email: %w", err)
	}
	if err := s.UserRepo.SetOtp(user.ID, code, time.Now()); err != nil {
		return fmt.Errorf("db error after email: %w", err)
	}

	log.Printf("[otp][send] ok: email=%s", user.Email)
	return nil
}

// ValidateOtp checks the candidate against the outstanding code. Comparison
// is string-normalized so "1234" and a numeric 1234 both match.
func (s *OtpService) ValidateOtp(email, candidate string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.OtpCode == nil || user.OtpIssuedAt == nil {
		return ErrNoCodeIssued
	}
	if time.Since(*user.OtpIssuedAt) > otpValidityWindow {
		return ErrCodeExpired
	}
	if strings.TrimSpace(*user.OtpCode) != strings.TrimSpace(candidate) {
		return ErrCodeInvalid
	}

	log.Printf("[otp][validate] ok: email=%s", user.Email)
	return nil
}

// SetMpin stores the obfuscated MPIN. It performs no OTP check of its own;
// the caller is expected to have validated the code first.
func (s *OtpService) SetMpin(email, newMpin string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.UserRepo.SetMpin(user.ID, ObfuscateMpin(newMpin)); err != nil {
		return err
	}

	log.Printf("[otp][mpin] updated: email=%s", user.Email)
	return nil
}

// ObfuscateMpin base64-encodes the MPIN before storage. This is reversible
// obfuscation, NOT a hash: it provides no confidentiality against anyone
// with read access to the store. Kept as-is to stay wire-compatible with
// the existing user records.
func ObfuscateMpin(mpin string) string {
	return base64.StdEncoding.EncodeToString([]byte(mpin))
}
