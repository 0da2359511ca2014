package handlers_test

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"novaapp/internal/handlers"
	"novaapp/internal/models"
	"novaapp/internal/routes"
	"novaapp/internal/services"
)

// Shared fakes for handler tests: in-memory repositories and gateways wired
// through the real services, exercising the full route -> handler -> service
// path over httptest.

type fakeUserRepo struct {
	users     map[string]*models.User
	setOtpErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := make(map[string]*models.User)
	for _, u := range users {
		m[strings.ToLower(u.Email)] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) SetOtp(userID int, code string, issuedAt time.Time) error {
	if f.setOtpErr != nil {
		return f.setOtpErr
	}
	for _, u := range f.users {
		if u.ID == userID {
			c, ts := code, issuedAt
			u.OtpCode = &c
			u.OtpIssuedAt = &ts
		}
	}
	return nil
}

func (f *fakeUserRepo) SetMpin(userID int, encodedMpin string) error {
	for _, u := range f.users {
		if u.ID == userID {
			e := encodedMpin
			u.Mpin = &e
		}
	}
	return nil
}

type fakeEmailService struct {
	sentTo   []string
	sentCode []string
	err      error
}

func (f *fakeEmailService) SendOtpEmail(email, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, email)
	f.sentCode = append(f.sentCode, code)
	return nil
}

type fakePushGateway struct {
	err error
}

func (f *fakePushGateway) Send(token, title, body string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "projects/test/messages/" + token, nil
}

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) GenerateText(prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeNewsRepo struct {
	items map[string]*models.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{items: make(map[string]*models.News)}
}

func (f *fakeNewsRepo) Create(item *models.News) error {
	item.ID = int64(len(f.items) + 1)
	f.items[item.NewsID] = item
	return nil
}

func (f *fakeNewsRepo) ListAll() ([]*models.News, error) {
	var list []*models.News
	for _, item := range f.items {
		list = append(list, item)
	}
	return list, nil
}

func (f *fakeNewsRepo) GetByNewsID(newsID string) (*models.News, error) {
	return f.items[newsID], nil
}

func (f *fakeNewsRepo) Update(newsID, name, description string, updatedAt time.Time) error {
	item := f.items[newsID]
	if name != "" {
		item.Name = name
	}
	if description != "" {
		item.Description = description
	}
	item.UpdatedAt = &updatedAt
	return nil
}

func (f *fakeNewsRepo) Delete(newsID string) error {
	delete(f.items, newsID)
	return nil
}

type fakeMediaRepo struct {
	records map[string]*models.MediaLibrary
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{records: make(map[string]*models.MediaLibrary)}
}

func (f *fakeMediaRepo) GetByEmail(email string) (*models.MediaLibrary, error) {
	return f.records[email], nil
}

func (f *fakeMediaRepo) AppendFile(email, kind, url string) error {
	m := f.records[email]
	if m == nil {
		m = &models.MediaLibrary{Email: email}
		f.records[email] = m
	}
	if kind == "video" {
		m.Videos = append(m.Videos, url)
	} else {
		m.Images = append(m.Images, url)
	}
	return nil
}

func (f *fakeMediaRepo) SetQRCode(email, url string, updatedAt time.Time) error {
	m := f.records[email]
	if m == nil {
		m = &models.MediaLibrary{Email: email}
		f.records[email] = m
	}
	m.QRCodeURL = &url
	m.UpdatedAt = &updatedAt
	return nil
}

type fakeCDN struct {
	err error
}

func (f *fakeCDN) Upload(data []byte, folder, publicID, resourceType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/" + folder + "/" + publicID, nil
}

type testEnv struct {
	userRepo  *fakeUserRepo
	emails    *fakeEmailService
	gateway   *fakePushGateway
	gen       *fakeGenerator
	newsRepo  *fakeNewsRepo
	mediaRepo *fakeMediaRepo
	cdn       *fakeCDN
	router    *gin.Engine
}

func newTestEnv(users ...*models.User) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		userRepo:  newFakeUserRepo(users...),
		emails:    &fakeEmailService{},
		gateway:   &fakePushGateway{},
		gen:       &fakeGenerator{reply: "hello"},
		newsRepo:  newFakeNewsRepo(),
		mediaRepo: newFakeMediaRepo(),
		cdn:       &fakeCDN{},
	}

	otpService := services.NewOtpService(env.userRepo, env.emails)
	notificationService := services.NewNotificationService(env.userRepo, env.gateway)
	newsService := services.NewNewsService(env.newsRepo, env.cdn)
	mediaService := services.NewMediaService(env.mediaRepo, env.cdn)
	assistantService := services.NewAssistantService(env.gen)

	env.router = gin.New()
	routes.SetupRoutes(
		env.router,
		handlers.NewOtpHandler(otpService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewNewsHandler(newsService),
		handlers.NewMediaHandler(mediaService),
		handlers.NewAssistantHandler(assistantService),
	)
	return env
}

func strPtr(s string) *string { return &s }
