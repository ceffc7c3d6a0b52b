package appointment

import (
	"context"
	"encoding/json"

	"bookflow/audit"
	"bookflow/clients"
	"bookflow/models"
	"bookflow/services/notification"
	"bookflow/utils"

	"golang.org/x/sync/errgroup"
)

// DefaultFlowService implements FlowService against the booking and
// identity services.
type DefaultFlowService struct {
	Booking  *clients.BookingClient
	Identity *clients.IdentityClient
	Audit    *audit.Dispatcher
	Notify   notification.Service
}

func (s *DefaultFlowService) GetOrCreate(ctx context.Context, companyID string) (*models.AppointmentSession, error) {
	sess, err := s.Booking.GetOrCreateSession(ctx, companyID)
	if err != nil {
		return nil, err
	}
	s.Audit.Dispatch(audit.Event{
		SessionID: sess.SessionID,
		CompanyID: sess.CompanyID,
		Action:    audit.ActionSessionCreated,
	})
	return sess, nil
}

func (s *DefaultFlowService) Get(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	return s.Booking.GetSession(ctx, sessionID)
}

// guarded fetches the session and checks the flow guard for op, returning
// the fresh session on success.
func (s *DefaultFlowService) guarded(ctx context.Context, sessionID string, op Operation) (*models.AppointmentSession, error) {
	sess, err := s.Booking.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := Guard(sess, op); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultFlowService) SubmitContact(ctx context.Context, sessionID string, in ContactInput) (*models.AppointmentSession, error) {
	sess, err := s.guarded(ctx, sessionID, OpSubmitContact)
	if err != nil {
		return nil, err
	}

	updated, err := s.Booking.SubmitContact(ctx, sessionID, clients.ContactInput{
		GivenName:    in.GivenName,
		FamilyName:   in.FamilyName,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		CompanyID: sess.CompanyID,
		Action:    audit.ActionContactSubmitted,
	})
	return updated, nil
}

func (s *DefaultFlowService) SelectProfile(ctx context.Context, sessionID, profileID string) error {
	sess, err := s.guarded(ctx, sessionID, OpSelectProfile)
	if err != nil {
		return err
	}
	if err := s.Booking.SelectProfile(ctx, sessionID, profileID); err != nil {
		return err
	}
	s.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		CompanyID: sess.CompanyID,
		Action:    audit.ActionProfileSelected,
		Metadata:  map[string]any{"profileId": profileID},
	})
	return nil
}

func (s *DefaultFlowService) SelectServices(ctx context.Context, sessionID string, serviceIDs []int64) error {
	sess, err := s.guarded(ctx, sessionID, OpSelectServices)
	if err != nil {
		return err
	}
	if err := s.Booking.SelectServices(ctx, sessionID, serviceIDs); err != nil {
		return err
	}
	s.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		CompanyID: sess.CompanyID,
		Action:    audit.ActionServicesSelected,
		Metadata:  map[string]any{"serviceIds": serviceIDs},
	})
	return nil
}

func (s *DefaultFlowService) SelectStartTime(ctx context.Context, sessionID, startTime string) error {
	sess, err := s.guarded(ctx, sessionID, OpSelectStartTime)
	if err != nil {
		return err
	}
	if err := s.Booking.SelectStartTime(ctx, sessionID, startTime); err != nil {
		return err
	}
	s.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		CompanyID: sess.CompanyID,
		Action:    audit.ActionTimeSelected,
		Metadata:  map[string]any{"startTime": startTime},
	})
	return nil
}

func (s *DefaultFlowService) Confirm(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	if _, err := s.guarded(ctx, sessionID, OpConfirm); err != nil {
		return nil, err
	}

	confirmed, err := s.Booking.ConfirmSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		CompanyID: confirmed.CompanyID,
		Action:    audit.ActionSessionConfirmed,
		Metadata:  map[string]any{"startTime": confirmed.SelectedStartTime},
	})

	s.notifyConfirmed(ctx, confirmed)
	return confirmed, nil
}

// notifyConfirmed enqueues the confirmation best-effort; a queue outage
// must not turn a booked appointment into an error page.
func (s *DefaultFlowService) notifyConfirmed(ctx context.Context, sess *models.AppointmentSession) {
	payload := models.ConfirmationPayload{
		SessionID: sess.SessionID,
		CompanyID: sess.CompanyID,
		ContactID: sess.ContactID,
		StartTime: sess.SelectedStartTime,
	}
	if contact, err := s.Identity.GetContact(ctx, sess.ContactID); err == nil {
		payload.ContactEmail = contact.Email
	}
	if err := s.Notify.SendConfirmation(ctx, payload); err != nil {
		utils.GetLogger().Sugar().Warnf("flow: failed to enqueue confirmation for session %s: %v", sess.SessionID, err)
	}
}

func (s *DefaultFlowService) Profiles(ctx context.Context, sessionID string) ([]models.Profile, error) {
	return s.Booking.ListProfiles(ctx, sessionID)
}

// ServiceCatalog fans out the two flat catalog lists concurrently and
// joins them. The joined result sits in the Redis cache for a short TTL:
// every services-page load otherwise costs two upstream round trips for a
// catalog that changes on admin edits, not per booking.
func (s *DefaultFlowService) ServiceCatalog(ctx context.Context, sessionID string) ([]models.GroupedServiceGroup, error) {
	cache := utils.GetCacheClient()
	key := utils.CatalogCachePrefix + sessionID

	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		var grouped []models.GroupedServiceGroup
		if err := json.Unmarshal([]byte(cached), &grouped); err == nil {
			return grouped, nil
		}
	}

	var (
		groups   []models.ServiceGroup
		services []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.Booking.ListServiceGroups(gctx, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = s.Booking.ListServices(gctx, sessionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grouped := GroupServices(groups, services)
	if data, err := json.Marshal(grouped); err == nil {
		if err := cache.Set(ctx, key, data, utils.CatalogCacheTTL).Err(); err != nil {
			utils.GetLogger().Sugar().Warnf("flow: failed to cache catalog for session %s: %v", sessionID, err)
		}
	}
	return grouped, nil
}

func (s *DefaultFlowService) DaySchedule(ctx context.Context, sessionID, date string) (*models.Schedule, error) {
	return s.Booking.GetSchedule(ctx, sessionID, date)
}

// BuildOverview loads the session, then fans out the contact and service
// details it references. All fetches must succeed before rendering.
func (s *DefaultFlowService) BuildOverview(ctx context.Context, sessionID string) (*Overview, error) {
	sess, err := s.Booking.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Session:          sess,
		SelectedServices: []models.Service{},
		ActiveStepIndex:  ActiveStepIndex(sess.Steps),
		State:            DeriveState(sess).String(),
	}

	g, gctx := errgroup.WithContext(ctx)
	if sess.ContactID != "" {
		g.Go(func() error {
			contact, err := s.Identity.GetContact(gctx, sess.ContactID)
			if err != nil {
				return err
			}
			overview.Contact = contact
			return nil
		})
	}
	if len(sess.SelectedServices) > 0 {
		g.Go(func() error {
			all, err := s.Booking.ListServices(gctx, sessionID)
			if err != nil {
				return err
			}
			selected := make(map[int64]bool, len(sess.SelectedServices))
			for _, id := range sess.SelectedServices {
				selected[id] = true
			}
			for _, svc := range all {
				if selected[svc.ID] {
					overview.SelectedServices = append(overview.SelectedServices, svc)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
