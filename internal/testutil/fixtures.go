package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
	isAdmin  bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@test.local", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin marks the user as an admin
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:       b.username,
		Email:          b.email,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		IsAdmin:        b.isAdmin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates a user in the database and logs in through
// the API, returning the user and a bearer token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	form := url.Values{}
	form.Set("username", b.username)
	form.Set("password", password)

	resp, err := http.Post(ts.BaseURL()+"/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	AssertJSONResponse(t, resp, &tokenResp)

	return user, tokenResp.AccessToken
}

// GoalBuilder creates test goals
type GoalBuilder struct {
	title  string
	status domain.GoalStatus
	userID uint
}

// NewGoalBuilder creates a new GoalBuilder with default values
func NewGoalBuilder(userID uint) *GoalBuilder {
	return &GoalBuilder{
		title:  fmt.Sprintf("goal_%s", uuid.New().String()[:8]),
		status: domain.GoalStatusActive,
		userID: userID,
	}
}

// WithTitle sets the title
func (b *GoalBuilder) WithTitle(title string) *GoalBuilder {
	b.title = title
	return b
}

// WithStatus sets the status
func (b *GoalBuilder) WithStatus(status domain.GoalStatus) *GoalBuilder {
	b.status = status
	return b
}

// Build creates the goal in the database
func (b *GoalBuilder) Build(t *testing.T, db *gorm.DB) *domain.Goal {
	t.Helper()

	goal := &domain.Goal{
		Title:  b.title,
		Status: b.status,
		UserID: b.userID,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return goal
}

// SessionBuilder creates test game sessions
type SessionBuilder struct {
	userID uint
	player string
	result string
	mood   int
	date   time.Time
}

// NewSessionBuilder creates a new SessionBuilder with default values
func NewSessionBuilder(userID uint) *SessionBuilder {
	return &SessionBuilder{
		userID: userID,
		player: "Jax",
		result: "win",
		mood:   3,
		date:   time.Now(),
	}
}

// WithChampion sets the player character
func (b *SessionBuilder) WithChampion(name string) *SessionBuilder {
	b.player = name
	return b
}

// WithResult sets the result
func (b *SessionBuilder) WithResult(result string) *SessionBuilder {
	b.result = result
	return b
}

// WithDate sets the session date
func (b *SessionBuilder) WithDate(date time.Time) *SessionBuilder {
	b.date = date
	return b
}

// Build creates the session in the database
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.GameSession {
	t.Helper()

	session := &domain.GameSession{
		Date:            b.date,
		PlayerCharacter: b.player,
		Result:          b.result,
		MoodRating:      b.mood,
		UserID:          b.userID,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create game session: %v", err)
	}
	return session
}

// VideoBuilder creates test videos
type VideoBuilder struct {
	title string
	url   string
	tags  []string
}

// NewVideoBuilder creates a new VideoBuilder with default values
func NewVideoBuilder() *VideoBuilder {
	suffix := uuid.New().String()[:8]
	return &VideoBuilder{
		title: fmt.Sprintf("video_%s", suffix),
		url:   fmt.Sprintf("https://example.com/videos/%s", suffix),
	}
}

// WithTitle sets the title
func (b *VideoBuilder) WithTitle(title string) *VideoBuilder {
	b.title = title
	return b
}

// WithTags sets the tags
func (b *VideoBuilder) WithTags(tags ...string) *VideoBuilder {
	b.tags = tags
	return b
}

// Build creates the video in the database
func (b *VideoBuilder) Build(t *testing.T, db *gorm.DB) *domain.VideoTutorial {
	t.Helper()

	video := &domain.VideoTutorial{
		Title: b.title,
		URL:   b.url,
		Tags:  b.tags,
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("failed to create video: %v", err)
	}
	return video
}
