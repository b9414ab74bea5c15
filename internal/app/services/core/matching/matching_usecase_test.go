package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"praxismatch-service/internal/app/config"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

type MockTherapistRepository struct{ mock.Mock }

func (m *MockTherapistRepository) FindVerified(ctx context.Context) ([]models.Therapist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Therapist), args.Error(1)
}

type MockSlotRepository struct{ mock.Mock }

func (m *MockSlotRepository) FindActive(ctx context.Context) ([]models.TherapistSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TherapistSlot), args.Error(1)
}

type MockMatchRepository struct{ mock.Mock }

func (m *MockMatchRepository) Insert(ctx context.Context, match *models.MatchRecord) (string, error) {
	args := m.Called(ctx, match)
	return args.String(0), args.Error(1)
}

func (m *MockMatchRepository) FindBySecureUUID(ctx context.Context, secureUUID string) ([]models.MatchRecord, error) {
	args := m.Called(ctx, secureUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchRecord), args.Error(1)
}

type MockSupplyGapRepository struct{ mock.Mock }

func (m *MockSupplyGapRepository) Insert(ctx context.Context, gap *models.SupplyGap) error {
	args := m.Called(ctx, gap)
	return args.Error(0)
}

type MockAnalyticsPublisher struct{ mock.Mock }

func (m *MockAnalyticsPublisher) Publish(ctx context.Context, event contracts.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockRedisRepository struct{ mock.Mock }

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type usecaseFixture struct {
	patients   *MockPatientRepository
	therapists *MockTherapistRepository
	slots      *MockSlotRepository
	matches    *MockMatchRepository
	supplyGaps *MockSupplyGapRepository
	analytics  *MockAnalyticsPublisher
	redis      *MockRedisRepository
	usecase    *matchingUsecase
}

func newUsecaseFixture(matchingConfig config.Matching) *usecaseFixture {
	f := &usecaseFixture{
		patients:   new(MockPatientRepository),
		therapists: new(MockTherapistRepository),
		slots:      new(MockSlotRepository),
		matches:    new(MockMatchRepository),
		supplyGaps: new(MockSupplyGapRepository),
		analytics:  new(MockAnalyticsPublisher),
		redis:      new(MockRedisRepository),
	}
	f.usecase = &matchingUsecase{
		PatientRepository:   f.patients,
		TherapistRepository: f.therapists,
		SlotRepository:      f.slots,
		MatchRepository:     f.matches,
		SupplyGapRepository: f.supplyGaps,
		AnalyticsPublisher:  f.analytics,
		RedisRepository:     f.redis,
		MatchingConfig:      matchingConfig,
		Log:                 zap.NewNop(),
		now:                 func() time.Time { return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC) },
	}
	return f
}

func defaultMatchingConfig() config.Matching {
	return config.Matching{
		Enabled:             true,
		MaxProposals:        3,
		ExactScoreThreshold: 120,
		PoolCacheTTLSeconds: 60,
	}
}

func verifiedTherapist(id string) models.Therapist {
	return models.Therapist{
		ID:              id,
		Status:          constvars.TherapistStatusVerified,
		Gender:          constvars.GenderPreferenceFemale,
		City:            "Berlin",
		CalBookingsLive: true,
		SessionPreferences: []string{
			constvars.SessionFormatOnline,
			constvars.SessionFormatInPerson,
		},
		Modalities:   []string{"EMDR"},
		Schwerpunkte: []string{"Trauma", "Angst", "Depression"},
		PhotoURL:     "https://example.org/p.jpg",
		ApproachText: "Mein Ansatz",
		WhoComesToMe: "Menschen mit Trauma",
	}
}

func TestRunMatching(t *testing.T) {
	request := &requests.RunMatching{PatientID: "p-1"}

	t.Run("Disabled Cohort Returns Nil Result", func(t *testing.T) {
		cfg := defaultMatchingConfig()
		cfg.Enabled = false
		f := newUsecaseFixture(cfg)

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		assert.Nil(t, result)
		f.patients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Patient Read Failure Fails The Run", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(nil, errors.New("db down"))

		result, err := f.usecase.RunMatching(context.Background(), request)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Unknown Patient Is Not Found", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(nil, nil)

		result, err := f.usecase.RunMatching(context.Background(), request)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Successful Run Persists Records And Returns Redirect", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		patient := &models.Patient{ID: "p-1", Metadata: models.PatientMetadata{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatOnline, constvars.SessionFormatInPerson},
			Specializations:    []string{"EMDR"},
			Schwerpunkte:       []string{"Trauma", "Angst", "Depression"},
			GenderPreference:   constvars.GenderPreferenceFemale,
		}}

		f.patients.On("FindByID", mock.Anything, "p-1").Return(patient, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", nil)
		f.redis.On("Set", mock.Anything, constvars.RedisKeyTherapistPool, mock.Anything, mock.Anything).Return(nil)
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{
			verifiedTherapist("t-1"),
			verifiedTherapist("t-2"),
		}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{
			{TherapistID: "t-1", DayOfWeek: 1, TimeLocal: "10:00", Active: true},
		}, nil)
		f.matches.On("Insert", mock.Anything, mock.AnythingOfType("*models.MatchRecord")).Return("match-id", nil)
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
		f.analytics.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, constvars.MatchQualityExact, result.MatchQuality)
		assert.Contains(t, result.MatchesURL, "/matches/")

		f.matches.AssertNumberOfCalls(t, "Insert", 2)
	})

	t.Run("Cache Hit Skips Repository Read", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(&models.Patient{ID: "p-1"}, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).
			Return(`[{"id":"t-1","status":"verified"}]`, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("match-id", nil)
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
		f.analytics.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)

		f.therapists.AssertNotCalled(t, "FindVerified", mock.Anything)
	})

	t.Run("Cache Failure Falls Back To Repository", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(&models.Patient{ID: "p-1"}, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", errors.New("redis down"))
		f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{verifiedTherapist("t-1")}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("match-id", nil)
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
		f.analytics.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("Empty Pool Writes Empty Marker With None Quality", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(&models.Patient{ID: "p-1"}, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", nil)
		f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)

		var marker *models.MatchRecord
		f.matches.On("Insert", mock.Anything, mock.AnythingOfType("*models.MatchRecord")).
			Run(func(args mock.Arguments) { marker = args.Get(1).(*models.MatchRecord) }).
			Return("match-id", nil)
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
		f.analytics.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, constvars.MatchQualityNone, result.MatchQuality)

		require.NotNil(t, marker)
		assert.Empty(t, marker.TherapistID)
		assert.Equal(t, constvars.MatchStatusProposed, marker.Status)
	})

	t.Run("Partial Insert Failure Is Tolerated", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(&models.Patient{ID: "p-1"}, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", nil)
		f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{
			verifiedTherapist("t-1"),
			verifiedTherapist("t-2"),
		}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("", errors.New("write conflict")).Once()
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("match-id", nil)
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
		f.analytics.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("All Inserts Failing Fails The Run", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.patients.On("FindByID", mock.Anything, "p-1").Return(&models.Patient{ID: "p-1"}, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", nil)
		f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{verifiedTherapist("t-1")}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("", errors.New("write conflict"))

		result, err := f.usecase.RunMatching(context.Background(), request)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Analytics Failure Never Reaches The Caller", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		patient := &models.Patient{ID: "p-1", Metadata: models.PatientMetadata{
			Schwerpunkte: []string{"Seltene Spezialisierung"},
		}}
		f.patients.On("FindByID", mock.Anything, "p-1").Return(patient, nil)
		f.redis.On("Get", mock.Anything, constvars.RedisKeyTherapistPool).Return("", nil)
		f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.therapists.On("FindVerified", mock.Anything).Return([]models.Therapist{verifiedTherapist("t-1")}, nil)
		f.slots.On("FindActive", mock.Anything).Return([]models.TherapistSlot{}, nil)
		f.matches.On("Insert", mock.Anything, mock.Anything).Return("match-id", nil)

		published := make(chan struct{})
		f.supplyGaps.On("Insert", mock.Anything, mock.Anything).Return(errors.New("db down"))
		f.analytics.On("Publish", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(published) }).
			Return(errors.New("broker down"))

		result, err := f.usecase.RunMatching(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)

		select {
		case <-published:
		case <-time.After(2 * time.Second):
			t.Fatal("expected analytics publish attempt")
		}
	})
}

func TestFindProposalsBySecureUUID(t *testing.T) {
	t.Run("Maps Records To Response", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.matches.On("FindBySecureUUID", mock.Anything, "uuid-1").Return([]models.MatchRecord{
			{
				TherapistID: "t-1",
				Status:      constvars.MatchStatusProposed,
				Metadata: models.MatchMetadata{
					MatchQuality:          constvars.MatchQualityPartial,
					TherapistMatchReasons: []string{constvars.MismatchReasonGender},
				},
			},
		}, nil)

		result, err := f.usecase.FindProposalsBySecureUUID(context.Background(), "uuid-1")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "t-1", result[0].TherapistID)
		assert.Equal(t, constvars.MatchQualityPartial, result[0].MatchQuality)
		assert.Equal(t, []string{constvars.MismatchReasonGender}, result[0].TherapistMatchReason)
	})

	t.Run("Unknown UUID Is Not Found", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.matches.On("FindBySecureUUID", mock.Anything, "uuid-x").Return([]models.MatchRecord{}, nil)

		result, err := f.usecase.FindProposalsBySecureUUID(context.Background(), "uuid-x")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Repository Failure Propagates", func(t *testing.T) {
		f := newUsecaseFixture(defaultMatchingConfig())
		f.matches.On("FindBySecureUUID", mock.Anything, "uuid-1").Return(nil, errors.New("db down"))

		result, err := f.usecase.FindProposalsBySecureUUID(context.Background(), "uuid-1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
