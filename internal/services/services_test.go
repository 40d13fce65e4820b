package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/database"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
)

// recordingNotifier captures notifications; fail makes delivery error out.
type recordingNotifier struct {
	recipients []string
	bodies     []string
	fail       bool
}

func (n *recordingNotifier) Notify(recipient, body string) error {
	if n.fail {
		return errDeliveryDown
	}
	n.recipients = append(n.recipients, recipient)
	n.bodies = append(n.bodies, body)
	return nil
}

var errDeliveryDown = &deliveryError{}

type deliveryError struct{}

func (e *deliveryError) Error() string { return "smtp relay unreachable" }

type serviceTestEnv struct {
	db                *gorm.DB
	notifier          *recordingNotifier
	credentialService *CredentialService
	membershipService *MembershipService
	matchService      *MatchService
	clubService       *ClubService
	queryService      *QueryService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; pin the pool to
	// one so every query and transaction sees the same store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Season{},
		&models.Match{},
		&models.BattingStat{},
		&models.BowlingStat{},
		&models.OverStat{},
		&models.ClubMembership{},
		&models.ResetToken{},
	)
	require.NoError(t, err)
	require.NoError(t, database.AddIndexes(db))

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	reportRepo := repository.NewReportRepository(db)

	notifier := &recordingNotifier{}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:                db,
		notifier:          notifier,
		credentialService: NewCredentialService(userRepo, tokenRepo, notifier),
		membershipService: NewMembershipService(membershipRepo, clubRepo),
		matchService:      NewMatchService(matchRepo, clubRepo),
		clubService:       NewClubService(clubRepo, userRepo),
		queryService:      NewQueryService(clubRepo, matchRepo, reportRepo),
	}
}

// mustRegister creates a user directly for tests that need a player or actor.
func mustRegister(t *testing.T, env serviceTestEnv, username string) *models.User {
	t.Helper()
	user, err := env.credentialService.Register(RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user
}

// mustAdmin promotes a freshly registered user to admin.
func mustAdmin(t *testing.T, env serviceTestEnv, username string) *models.User {
	t.Helper()
	user := mustRegister(t, env, username)
	require.NoError(t, env.db.Model(user).Update("is_admin", true).Error)
	user.IsAdmin = true
	return user
}

// mustSeason creates a club with one season and returns both.
func mustSeason(t *testing.T, env serviceTestEnv, clubName, seasonName string) (*models.Club, *models.Season) {
	t.Helper()
	club := &models.Club{Name: clubName}
	require.NoError(t, env.db.Create(club).Error)
	season := &models.Season{ClubID: club.ID, Name: seasonName}
	require.NoError(t, env.db.Create(season).Error)
	return club, season
}
