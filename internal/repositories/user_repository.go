package repositories

import (
	"database/sql"
	"time"

	"novaapp/internal/models"
)

type UserRepository interface {
	// GetByEmail does a case-insensitive lookup and returns (nil, nil)
	// when no user matches.
	GetByEmail(email string) (*models.User, error)

	// SetOtp writes code and issued-at together; they are never written
	// independently.
	SetOtp(userID int, code string, issuedAt time.Time) error

	SetMpin(userID int, encodedMpin string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, email, mpin, otp_code, otp_issued_at, fcm_token
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`
	var (
		u        models.User
		mpin     sql.NullString
		otpCode  sql.NullString
		issuedAt sql.NullTime
		fcmToken sql.NullString
	)
	err := r.DB.QueryRow(q, email).Scan(&u.ID, &u.Email, &mpin, &otpCode, &issuedAt, &fcmToken)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if mpin.Valid {
		u.Mpin = &mpin.String
	}
	if otpCode.Valid {
		u.OtpCode = &otpCode.String
	}
	if issuedAt.Valid {
		u.OtpIssuedAt = &issuedAt.Time
	}
	if fcmToken.Valid {
		u.FCMToken = &fcmToken.String
	}
	return &u, nil
}

func (r *userRepository) SetOtp(userID int, code string, issuedAt time.Time) error {
	const q = `UPDATE users SET otp_code=$1, otp_issued_at=$2 WHERE id=$3`
	_, err := r.DB.Exec(q, code, issuedAt, userID)
	return err
}

func (r *userRepository) SetMpin(userID int, encodedMpin string) error {
	const q = `UPDATE users SET mpin=$1 WHERE id=$2`
	_, err := r.DB.Exec(q, encodedMpin, userID)
	return err
}
