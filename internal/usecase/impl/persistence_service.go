package impl

import (
	"context"
	"log/slog"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PersistenceServiceParams holds the dependencies of the persistence adapter.
type PersistenceServiceParams struct {
	fx.In

	Auth           usecase.AuthState
	GuestReminders repository.ReminderStore
	GuestFavorites repository.FavoriteStore
	ReminderRepo   repository.ReminderRepository
	FavoriteRepo   repository.FavoriteRepository
	ProfileRepo    repository.ProfileRepository
	TxManager      repository.TransactionManager
	Local          repository.LocalStore
	Logger         *slog.Logger
}

type persistenceService struct {
	auth           usecase.AuthState
	guestReminders repository.ReminderStore
	guestFavorites repository.FavoriteStore
	reminderRepo   repository.ReminderRepository
	favoriteRepo   repository.FavoriteRepository
	profileRepo    repository.ProfileRepository
	txManager      repository.TransactionManager
	local          repository.LocalStore
	logger         *slog.Logger
}

// NewPersistenceService creates the guest/authenticated persistence adapter.
func NewPersistenceService(params PersistenceServiceParams) usecase.PersistenceUsecase {
	return &persistenceService{
		auth:           params.Auth,
		guestReminders: params.GuestReminders,
		guestFavorites: params.GuestFavorites,
		reminderRepo:   params.ReminderRepo,
		favoriteRepo:   params.FavoriteRepo,
		profileRepo:    params.ProfileRepo,
		txManager:      params.TxManager,
		local:          params.Local,
		logger:         params.Logger,
	}
}

// ReminderStore returns the reminder collection of the current scope.
func (s *persistenceService) ReminderStore() repository.ReminderStore {
	if userID := s.auth.Current().UserID; userID != nil {
		return newRemoteReminderStore(s.reminderRepo, *userID)
	}

	return s.guestReminders
}

// FavoriteStore returns the favorite collection of the current scope.
func (s *persistenceService) FavoriteStore() repository.FavoriteStore {
	if userID := s.auth.Current().UserID; userID != nil {
		return newRemoteFavoriteStore(s.favoriteRepo, *userID)
	}

	return s.guestFavorites
}

func (s *persistenceService) LoadReminders(ctx context.Context) ([]*entity.ProductReminder, error) {
	return s.ReminderStore().LoadReminders(ctx)
}

func (s *persistenceService) SaveReminders(ctx context.Context, reminders []*entity.ProductReminder) error {
	return s.ReminderStore().SaveReminders(ctx, reminders)
}

func (s *persistenceService) LoadFavorites(ctx context.Context) ([]*entity.FavoriteProduct, error) {
	return s.FavoriteStore().LoadFavorites(ctx)
}

func (s *persistenceService) SaveFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error {
	return s.FavoriteStore().SaveFavorites(ctx, favorites)
}

// LoadPreferences reads the local cache first; a remote profile overrides it when signed in.
func (s *persistenceService) LoadPreferences(ctx context.Context) (*entity.Preferences, error) {
	prefs := entity.DefaultPreferences()
	if _, err := readLocalJSON(ctx, s.local, constants.LocalKeyPreferences, &prefs); err != nil {
		s.logger.Warn("Failed to read local preferences, using defaults", slog.Any("error", err))
		prefs = entity.DefaultPreferences()
	}

	userID := s.auth.Current().UserID
	if userID == nil {
		return &prefs, nil
	}

	remote, err := s.profileRepo.FindPreferences(ctx, *userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			s.logger.Error("Failed to load remote preferences, keeping local values",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}

		return &prefs, nil
	}

	if err := writeLocalJSON(ctx, s.local, constants.LocalKeyPreferences, remote); err != nil {
		s.logger.Warn("Failed to cache remote preferences", slog.Any("error", err))
	}

	return remote, nil
}

// SavePreferences writes the local cache, then the remote profile when signed in.
func (s *persistenceService) SavePreferences(ctx context.Context, prefs *entity.Preferences) error {
	if err := writeLocalJSON(ctx, s.local, constants.LocalKeyPreferences, prefs); err != nil {
		return err
	}

	userID := s.auth.Current().UserID
	if userID == nil {
		return nil
	}

	if err := s.profileRepo.UpsertPreferences(ctx, *userID, prefs); err != nil {
		return errors.Wrap(err, "save remote preferences")
	}

	return nil
}

// MigrateGuestToUser copies unseen guest records to the user inside one transaction.
// Guest records are cleared only after the transaction commits.
func (s *persistenceService) MigrateGuestToUser(ctx context.Context, userID uuid.UUID) (*entity.MigrationResult, error) {
	guestFavorites, err := s.guestFavorites.LoadFavorites(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load guest favorites")
	}

	guestReminders, err := s.guestReminders.LoadReminders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load guest reminders")
	}

	result := &entity.MigrationResult{}
	if len(guestFavorites) == 0 && len(guestReminders) == 0 {
		return result, nil
	}

	favorites, err := s.unseenFavorites(ctx, userID, guestFavorites)
	if err != nil {
		return nil, err
	}

	reminders, err := s.unseenReminders(ctx, userID, guestReminders)
	if err != nil {
		return nil, err
	}

	if len(favorites) > 0 || len(reminders) > 0 {
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if len(favorites) > 0 {
				if err := factory.NewFavoriteRepository().CreateFavorites(ctx, favorites); err != nil {
					return errors.Wrap(err, "insert favorites")
				}
			}
			if len(reminders) > 0 {
				if err := factory.NewReminderRepository().CreateReminders(ctx, reminders); err != nil {
					return errors.Wrap(err, "insert reminders")
				}
			}

			return nil
		})
		if err != nil {
			s.logger.Error("[Sync] guest data migration failed, guest data kept",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrMigrationFailed.WrapMessage(err.Error())
		}
	}

	result.Favorites = len(favorites)
	result.Reminders = len(reminders)

	if err := s.guestFavorites.Clear(ctx); err != nil {
		s.logger.Error("[Sync] failed to clear guest favorites", slog.Any("error", err))
	}
	if err := s.guestReminders.Clear(ctx, time.Time{}); err != nil {
		s.logger.Error("[Sync] failed to clear guest reminders", slog.Any("error", err))
	}

	s.logger.Info("[Sync] guest data migrated",
		slog.String("user_id", userID.String()),
		slog.Int("favorites", result.Favorites),
		slog.Int("reminders", result.Reminders),
	)

	return result, nil
}

// unseenFavorites returns the guest favorites whose product is not yet favorited by the user.
func (s *persistenceService) unseenFavorites(ctx context.Context, userID uuid.UUID, guest []*entity.FavoriteProduct) ([]*entity.FavoriteProduct, error) {
	if len(guest) == 0 {
		return nil, nil
	}

	existing, err := s.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load user favorites")
	}

	seen := make(map[uuid.UUID]struct{}, len(existing)+len(guest))
	for _, f := range existing {
		seen[f.ProductID] = struct{}{}
	}

	unseen := make([]*entity.FavoriteProduct, 0, len(guest))
	for _, f := range guest {
		if _, ok := seen[f.ProductID]; ok {
			continue
		}
		seen[f.ProductID] = struct{}{}

		migrated := *f
		migrated.ID = uuid.New()
		migrated.UserID = &userID
		migrated.ApplyCurrencyDefaults()
		unseen = append(unseen, &migrated)
	}

	return unseen, nil
}

// unseenReminders returns the pending guest reminders whose term has no active reminder of the user.
func (s *persistenceService) unseenReminders(ctx context.Context, userID uuid.UUID, guest []*entity.ProductReminder) ([]*entity.ProductReminder, error) {
	if len(guest) == 0 {
		return nil, nil
	}

	existing, err := s.reminderRepo.FindActiveRemindersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load user reminders")
	}

	seen := make(map[string]struct{}, len(existing)+len(guest))
	for _, r := range existing {
		seen[r.TermKey()] = struct{}{}
	}

	unseen := make([]*entity.ProductReminder, 0, len(guest))
	for _, r := range guest {
		if !r.IsPending() {
			continue
		}
		key := r.TermKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		migrated := *r
		migrated.ID = uuid.New()
		migrated.UserID = &userID
		migrated.NotifiedAt = nil
		unseen = append(unseen, &migrated)
	}

	return unseen, nil
}
