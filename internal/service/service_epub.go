package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/jncep"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/metrics"
	"github.com/MKhiriev/jncep-web/internal/validators"
	"github.com/MKhiriev/jncep-web/models"
)

type epubService struct {
	generator jncep.Generator
	labs      adapter.LabsAdapter
	validator validators.Validator

	outputRoot    string
	envEmail      string
	envPassword   string
	purchaseDelay time.Duration

	// sleep is replaced in tests so the purchase retry does not wait.
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewEpubService wires the download orchestration: the generator wrapper, the
// labs API adapter for the purchase retry, and the configured output root and
// environment credentials pair.
func NewEpubService(generator jncep.Generator, labs adapter.LabsAdapter, cfg config.JNCEP, logger *logger.Logger) EpubService {
	return &epubService{
		generator:     generator,
		labs:          labs,
		validator:     validators.NewEpubRequestValidator(),
		outputRoot:    cfg.Output,
		envEmail:      cfg.Email,
		envPassword:   cfg.Password,
		purchaseDelay: cfg.PurchaseDelay,
		sleep:         sleepContext,
		logger:        logger,
	}
}

// Download implements [EpubService].
func (s *epubService) Download(ctx context.Context, request models.EpubRequest) (models.EpubPayload, error) {
	started := time.Now()

	payload, err := s.download(ctx, request)

	metrics.RecordDownload(downloadOutcome(err), time.Since(started))
	if err == nil {
		metrics.RecordPayloadSize(len(payload.Data))
	}

	return payload, err
}

func (s *epubService) download(ctx context.Context, request models.EpubRequest) (models.EpubPayload, error) {
	if err := s.validateRequest(ctx, request); err != nil {
		return models.EpubPayload{}, err
	}

	creds, err := s.resolveCredentials(request)
	if err != nil {
		return models.EpubPayload{}, err
	}

	workdir, clientDir := s.workdirFor(request.ClientIP, time.Now())

	// The payload is fully buffered before returning, so the whole
	// per-client subtree can go as soon as packaging is done.
	defer func() {
		if removeErr := os.RemoveAll(clientDir); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("dir", clientDir).Msg("failed to remove working directory")
		}
	}()

	if err = s.generate(ctx, request, creds, workdir); err != nil {
		return models.EpubPayload{}, err
	}

	payload, err := packageEpubs(workdir)
	if err != nil {
		return models.EpubPayload{}, err
	}

	s.logger.Info().
		Str("filename", payload.Filename).
		Str("mime_type", payload.MIMEType).
		Int("bytes", len(payload.Data)).
		Msg("download prepared")

	return payload, nil
}

func (s *epubService) validateRequest(ctx context.Context, request models.EpubRequest) error {
	err := s.validator.Validate(ctx, request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrMissingURL):
		return ErrMissingURLParameter
	case errors.Is(err, validators.ErrInvalidURL):
		return fmt.Errorf("%w: %s", ErrInvalidNovelURL, request.URL)
	case errors.Is(err, validators.ErrPartialCredentials):
		return fmt.Errorf("%w request args", ErrPartialCredentials)
	default:
		return err
	}
}

// resolveCredentials picks the pair the generator will run with: the request
// pair when present, otherwise the server environment pair. Partial request
// pairs never reach this point, the validator rejects them first.
func (s *epubService) resolveCredentials(request models.EpubRequest) (models.Credentials, error) {
	fromRequest := models.Credentials{
		Email:    request.Email,
		Password: request.Password,
		Source:   models.CredentialsFromRequest,
	}
	if !fromRequest.IsZero() {
		s.logCredentials(fromRequest)
		return fromRequest, nil
	}

	fromEnv := models.Credentials{
		Email:    s.envEmail,
		Password: s.envPassword,
		Source:   models.CredentialsFromEnvironment,
	}
	if fromEnv.IsPartial() {
		return models.Credentials{}, fmt.Errorf("%w %s", ErrPartialCredentials, fromEnv.Source)
	}
	if fromEnv.IsZero() {
		return models.Credentials{}, ErrNoCredentials
	}

	s.logCredentials(fromEnv)
	return fromEnv, nil
}

func (s *epubService) logCredentials(creds models.Credentials) {
	s.logger.Info().
		Str("source", string(creds.Source)).
		Str("email", creds.MaskedEmail()).
		Msg("credentials resolved")
}

// workdirFor lays out one request's working directory as
// <root>/<client-ip>/<timestamp>, microsecond-stamped so rapid repeat
// requests from one client never collide.
func (s *epubService) workdirFor(clientIP string, now time.Time) (workdir, clientDir string) {
	client := clientIP
	if client == "" {
		client = "unknown"
	}

	stamp := now.Format("2006-01-02_15-04") + fmt.Sprintf("_%06d", now.Nanosecond()/1000)
	clientDir = filepath.Join(s.outputRoot, client)

	return filepath.Join(clientDir, stamp), clientDir
}

func (s *epubService) generate(ctx context.Context, request models.EpubRequest, creds models.Credentials, workdir string) error {
	genReq := jncep.GenerateRequest{
		NovelURL: request.URL,
		Parts:    request.Parts,
		Workdir:  workdir,
		Email:    creds.Email,
		Password: creds.Password,
	}

	err := s.generator.Generate(ctx, genReq)
	if err == nil {
		return nil
	}

	if errors.Is(err, jncep.ErrPaymentRequired) {
		retryErr := s.purchaseAndRegenerate(ctx, request, creds, genReq)
		metrics.RecordPurchaseRetry(retryErr == nil)
		if retryErr != nil {
			s.logger.Warn().Err(retryErr).Msg("purchase retry failed")
			return ErrNoPermission
		}
		return nil
	}

	return mapGeneratorError(err, request.URL)
}

// purchaseAndRegenerate is the one-shot recovery branch for accounts that
// have not bought the requested volume yet: wait out the rate limit, resolve
// the volume, sign in, spend coins on it, then run the generator again.
func (s *epubService) purchaseAndRegenerate(ctx context.Context, request models.EpubRequest, creds models.Credentials, genReq jncep.GenerateRequest) error {
	s.logger.Info().Msg("purchasing book due to missing permission after a delay")

	if err := s.sleep(ctx, s.purchaseDelay); err != nil {
		return err
	}

	volumeID, err := s.labs.ResolveVolumeID(ctx, request.URL, request.Parts)
	if err != nil {
		return fmt.Errorf("resolve volume id: %w", err)
	}

	s.logger.Info().Msg("read volume id, waiting before continuing to avoid rate limiting")
	if err = s.sleep(ctx, s.purchaseDelay); err != nil {
		return err
	}

	token, err := s.labs.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("labs login: %w", err)
	}

	// Already owning the volume satisfies the retry's goal.
	if err = s.labs.RedeemCoins(ctx, token, volumeID); err != nil && !errors.Is(err, adapter.ErrAlreadyOwned) {
		return fmt.Errorf("redeem coins: %w", err)
	}

	return s.generator.Generate(ctx, genReq)
}

func mapGeneratorError(err error, novelURL string) error {
	switch {
	case errors.Is(err, jncep.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, jncep.ErrInvalidNovelURL):
		return fmt.Errorf("%w: %s", ErrInvalidNovelURL, novelURL)
	default:
		return err
	}
}

func downloadOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrMissingURLParameter), errors.Is(err, ErrInvalidNovelURL):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrPartialCredentials), errors.Is(err, ErrNoCredentials), errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, ErrNoPermission):
		return metrics.OutcomePayment
	case errors.Is(err, ErrNoEpubsFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
