package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListByUserType(userType string) ([]models.User, error) {
	args := m.Called(userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Test successful registration: the created user carries a bcrypt hash,
	// never the raw password, and the issued token carries the claims.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		assert.NotEqual(t, "password123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
		user.ID = "user-123"
	}).Return(nil).Once()

	token, err := authService.Register("testuser", "password123", "seller")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, "seller", claims["user_type"])
	assert.Contains(t, claims, "exp")
	mockRepo.AssertExpectations(t)

	// Test duplicate username: the repository's unique constraint fires and
	// the service maps it to ErrUsernameTaken.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("username testuser: %w", repositories.ErrDuplicate)).Once()
	_, err = authService.Register("testuser", "password123", "seller")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Password: string(hashedPassword),
		UserType: "buyer",
	}

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, loggedIn, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", loggedIn.ID)
	assert.Equal(t, "testuser", loggedIn.Username)

	// The token's claims must include the stored user id and username.
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])
	mockRepo.AssertExpectations(t)

	// Wrong password and unknown username must yield the same error.
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, _, errWrongPassword := authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, errWrongPassword, services.ErrInvalidCredentials)

	mockRepo.On("GetByUsername", "nonexistentuser").
		Return(nil, fmt.Errorf("user with username nonexistentuser: %w", repositories.ErrNotFound)).Once()
	_, _, errUnknownUser := authService.Login("nonexistentuser", "password123")
	assert.ErrorIs(t, errUnknownUser, services.ErrInvalidCredentials)

	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   "user-123",
		"username":  "testuser",
		"user_type": "seller",
		"exp":       jwt.TimeFunc().Add(time.Hour).Unix(), // Expires in 1 hour
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])

	// Test invalid token (garbage)
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test token signed with a different secret
	otherToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	otherTokenString, _ := otherToken.SignedString([]byte("some_other_secret"))
	_, err = authService.ValidateToken(otherTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "testuser",
		"exp":      jwt.TimeFunc().Add(-time.Hour).Unix(), // Expired 1 hour ago
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_ConcurrentRegistration(t *testing.T) {
	// The in-memory repository enforces uniqueness atomically under its
	// lock, like the unique index does in the real database: out of N
	// concurrent registrations for one username, exactly one wins.
	repo := repositories.NewMockUserRepository()
	authService := services.NewAuthService(repo, "test_jwt_secret")

	const n = 8
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := authService.Register("raceuser", "password123", "buyer")
			results <- err
		}()
	}

	var succeeded, conflicted int
	for i := 0; i < n; i++ {
		err := <-results
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, services.ErrUsernameTaken)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicted)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte("correct horse")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hashed, []byte("battery staple")))
}
