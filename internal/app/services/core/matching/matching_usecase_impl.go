package matching

import (
	"context"
	"fmt"
	"sync"
	"time"

	"praxismatch-service/internal/app/config"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/dto/requests"
	"praxismatch-service/internal/pkg/dto/responses"
	"praxismatch-service/internal/pkg/exceptions"
	"praxismatch-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type matchingUsecase struct {
	PatientRepository   contracts.PatientRepository
	TherapistRepository contracts.TherapistRepository
	SlotRepository      contracts.SlotRepository
	MatchRepository     contracts.MatchRepository
	SupplyGapRepository contracts.SupplyGapRepository
	AnalyticsPublisher  contracts.AnalyticsPublisher
	RedisRepository     contracts.RedisRepository
	MatchingConfig      config.Matching
	Log                 *zap.Logger

	now func() time.Time
}

var (
	matchingUsecaseInstance contracts.MatchingUsecase
	onceMatchingUsecase     sync.Once
)

func NewMatchingUsecase(
	patientRepository contracts.PatientRepository,
	therapistRepository contracts.TherapistRepository,
	slotRepository contracts.SlotRepository,
	matchRepository contracts.MatchRepository,
	supplyGapRepository contracts.SupplyGapRepository,
	analyticsPublisher contracts.AnalyticsPublisher,
	redisRepository contracts.RedisRepository,
	matchingConfig config.Matching,
	logger *zap.Logger,
) contracts.MatchingUsecase {
	onceMatchingUsecase.Do(func() {
		matchingUsecaseInstance = &matchingUsecase{
			PatientRepository:   patientRepository,
			TherapistRepository: therapistRepository,
			SlotRepository:      slotRepository,
			MatchRepository:     matchRepository,
			SupplyGapRepository: supplyGapRepository,
			AnalyticsPublisher:  analyticsPublisher,
			RedisRepository:     redisRepository,
			MatchingConfig:      matchingConfig,
			Log:                 logger,
			now:                 time.Now,
		}
	})
	return matchingUsecaseInstance
}

func (uc *matchingUsecase) RunMatching(ctx context.Context, request *requests.RunMatching) (*responses.MatchRun, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("matchingUsecase.RunMatching called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if !uc.MatchingConfig.Enabled {
		uc.Log.Info("matchingUsecase.RunMatching matching disabled for cohort",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		)
		return nil, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		uc.Log.Error("matchingUsecase.RunMatching error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	prefs := DerivePreferences(patient)

	therapists, err := uc.fetchTherapistPool(ctx, requestID)
	if err != nil {
		return nil, err
	}

	slots, err := uc.SlotRepository.FindActive(ctx)
	if err != nil {
		uc.Log.Error("matchingUsecase.RunMatching error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	slotIndex := BuildSlotIndex(slots)
	now := uc.now()

	eligible, fallback := uc.scoreCandidates(therapists, prefs, slotIndex, now)
	uc.Log.Info("matchingUsecase.RunMatching candidate pools built",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCandidateCountKey, len(therapists)),
		zap.Int(constvars.LoggingEligibleCountKey, len(eligible)),
		zap.Int(constvars.LoggingFallbackCountKey, len(fallback)),
	)

	rankResult := Rank(eligible, fallback, uc.MatchingConfig.MaxProposals, uc.MatchingConfig.ExactScoreThreshold)
	uc.Log.Info("matchingUsecase.RunMatching ranking completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSelectedCountKey, len(rankResult.Selected)),
		zap.Bool("used_fallback", rankResult.UsedFallback),
		zap.String(constvars.LoggingMatchQualityKey, rankResult.MatchQuality),
	)

	secureUUID := utils.GenerateSecureUUID()
	err = uc.persistMatchRecords(ctx, requestID, patient.ID, secureUUID, rankResult, request.IsTest, now)
	if err != nil {
		return nil, err
	}

	// Gap reporting runs after the primary result is committed and is
	// structurally incapable of failing the run.
	go uc.reportSupplyGaps(patient.ID, prefs, rankResult.Selected, slotIndex, requestID, now)

	response := &responses.MatchRun{
		MatchesURL:   fmt.Sprintf(constvars.AppMatchesUrlFormat, secureUUID),
		MatchQuality: rankResult.MatchQuality,
	}
	uc.Log.Info("matchingUsecase.RunMatching succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingMatchQualityKey, response.MatchQuality),
	)
	return response, nil
}

func (uc *matchingUsecase) FindProposalsBySecureUUID(ctx context.Context, secureUUID string) ([]responses.ProposedMatch, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("matchingUsecase.FindProposalsBySecureUUID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.MatchRepository.FindBySecureUUID(ctx, secureUUID)
	if err != nil {
		uc.Log.Error("matchingUsecase.FindProposalsBySecureUUID error fetching matches",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrMatchNotFound(nil)
	}

	response := make([]responses.ProposedMatch, len(records))
	for i, record := range records {
		response[i] = responses.ProposedMatch{
			TherapistID:          record.TherapistID,
			Status:               record.Status,
			MatchQuality:         record.Metadata.MatchQuality,
			TherapistMatchReason: record.Metadata.TherapistMatchReasons,
		}
	}
	return response, nil
}

// fetchTherapistPool reads the verified pool through a short-TTL Redis
// cache. Cache failures degrade to a direct repository read, never to a
// failed run.
func (uc *matchingUsecase) fetchTherapistPool(ctx context.Context, requestID string) ([]models.Therapist, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyTherapistPool)
	if err != nil {
		uc.Log.Warn("matchingUsecase.fetchTherapistPool error reading cache, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		cached = ""
	}

	if cached != "" {
		var therapists []models.Therapist
		if err := json.Unmarshal([]byte(cached), &therapists); err == nil {
			uc.Log.Info("matchingUsecase.fetchTherapistPool pool served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingCandidateCountKey, len(therapists)),
			)
			return therapists, nil
		}
		uc.Log.Warn("matchingUsecase.fetchTherapistPool error parsing cached pool, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	therapists, err := uc.TherapistRepository.FindVerified(ctx)
	if err != nil {
		uc.Log.Error("matchingUsecase.fetchTherapistPool error fetching therapists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ttl := time.Duration(uc.MatchingConfig.PoolCacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyTherapistPool, therapists, ttl); err != nil {
			uc.Log.Warn("matchingUsecase.fetchTherapistPool error caching pool",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return therapists, nil
}

func (uc *matchingUsecase) scoreCandidates(therapists []models.Therapist, prefs *PatientPreferences, slotIndex *SlotIndex, now time.Time) (eligible, fallback []ScoredCandidate) {
	for i := range therapists {
		therapist := therapists[i]
		class := Classify(&therapist, prefs)
		if class == ClassExcluded {
			continue
		}

		mismatches := ComputeMismatches(prefs, &therapist)
		slots7d, slots14d := slotIndex.IntakeSlotCounts(therapist.ID, now)
		platformScore := CalculatePlatformScore(&therapist, slots7d, slots14d)
		matchScore := CalculateMatchScore(&therapist, prefs, slotIndex.HasMatchingTimeSlots(therapist.ID, prefs.TimeSlotPreferences))

		candidate := ScoredCandidate{
			Therapist:     therapist,
			PlatformScore: platformScore,
			MatchScore:    matchScore,
			TotalScore:    CalculateTotalScore(matchScore, platformScore),
			Class:         class,
			Mismatches:    mismatches,
		}

		if class == ClassEligible {
			eligible = append(eligible, candidate)
		} else {
			fallback = append(fallback, candidate)
		}
	}
	return eligible, fallback
}

// persistMatchRecords writes one row per selected therapist, or a single
// empty marker row when the selection is empty so the patient always has a
// record to land on. Inserts are independent: a failed row is logged and
// skipped, the run only fails when not a single row could be written.
func (uc *matchingUsecase) persistMatchRecords(ctx context.Context, requestID, patientID, secureUUID string, rankResult RankResult, isTest bool, now time.Time) error {
	if len(rankResult.Selected) == 0 {
		record := &models.MatchRecord{
			PatientID:  patientID,
			SecureUUID: secureUUID,
			Status:     constvars.MatchStatusProposed,
			Metadata: models.MatchMetadata{
				MatchQuality: rankResult.MatchQuality,
				IsTest:       isTest,
			},
			CreatedAt: now,
		}
		if _, err := uc.MatchRepository.Insert(ctx, record); err != nil {
			uc.Log.Error("matchingUsecase.persistMatchRecords error inserting empty marker",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	inserted := 0
	for _, candidate := range rankResult.Selected {
		record := &models.MatchRecord{
			PatientID:   patientID,
			TherapistID: candidate.Therapist.ID,
			SecureUUID:  secureUUID,
			Status:      constvars.MatchStatusProposed,
			Metadata: models.MatchMetadata{
				MatchQuality:          rankResult.MatchQuality,
				TherapistMatchQuality: candidate.TotalScore,
				TherapistMatchReasons: candidate.Mismatches.Reasons,
				IsTest:                isTest,
			},
			CreatedAt: now,
		}
		if _, err := uc.MatchRepository.Insert(ctx, record); err != nil {
			uc.Log.Error("matchingUsecase.persistMatchRecords error inserting match record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.String(constvars.LoggingTherapistIDKey, candidate.Therapist.ID),
				zap.Error(err),
			)
			continue
		}
		inserted++
	}

	if inserted == 0 {
		return exceptions.ErrMongoDBInsertDocument(fmt.Errorf("all %d match record inserts failed", len(rankResult.Selected)))
	}
	return nil
}

// reportSupplyGaps is the deferred post-processing stage. It runs on its own
// context and swallows every failure, including panics: the primary result
// has already been returned by the time this executes.
func (uc *matchingUsecase) reportSupplyGaps(patientID string, prefs *PatientPreferences, selected []ScoredCandidate, slotIndex *SlotIndex, requestID string, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			uc.Log.Error("matchingUsecase.reportSupplyGaps recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report := BuildSupplyGapReport(patientID, prefs, selected, slotIndex, now)
	if !report.HasFindings() {
		return
	}

	persisted := 0
	for i := range report.Gaps {
		gap := report.Gaps[i]
		if err := uc.SupplyGapRepository.Insert(ctx, &gap); err != nil {
			uc.Log.Warn("matchingUsecase.reportSupplyGaps error inserting supply gap",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
			continue
		}
		persisted++
	}

	reasons := make([]string, 0, len(selected))
	for _, candidate := range selected {
		reasons = append(reasons, candidate.Mismatches.Reasons...)
	}

	event := contracts.AnalyticsEvent{
		Type: constvars.AnalyticsEventBusinessOpportunity,
		Props: map[string]interface{}{
			"patient_id":     patientID,
			"reasons":        reasons,
			"insights":       report.Insights,
			"demand_signals": report.DemandSignals,
			"details": map[string]interface{}{
				"selected_count":    len(selected),
				"supply_gap_count":  len(report.Gaps),
				"persisted_gaps":    persisted,
				"gender_preference": prefs.GenderPreference,
				"city":              prefs.City,
			},
		},
	}
	if err := uc.AnalyticsPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("matchingUsecase.reportSupplyGaps error publishing analytics event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("matchingUsecase.reportSupplyGaps completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingSupplyGapCountKey, persisted),
	)
}
