package webinar

import (
	"context"

	"go.uber.org/zap"

	"nurturebloom/models"
	"nurturebloom/utils"
)

func (s *DefaultWebinarService) ListUpcoming(ctx context.Context) ([]models.WebinarView, error) {
	list, err := s.Repo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

func (s *DefaultWebinarService) ListAll(ctx context.Context) ([]models.WebinarView, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

func (s *DefaultWebinarService) ListRecorded(ctx context.Context) ([]models.WebinarView, error) {
	list, err := s.Repo.ListRecorded(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

func (s *DefaultWebinarService) ListByTag(ctx context.Context, tag string) ([]models.WebinarView, error) {
	list, err := s.Repo.ListByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

func (s *DefaultWebinarService) ListRegistered(ctx context.Context, actor models.Actor) ([]models.WebinarView, error) {
	list, err := s.Repo.ListByAttendee(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

func (s *DefaultWebinarService) view(ctx context.Context, w models.Webinar) *models.WebinarView {
	return &s.views(ctx, []models.Webinar{w})[0]
}

// views resolves presenter names. A failed lookup degrades to bare ids.
func (s *DefaultWebinarService) views(ctx context.Context, list []models.Webinar) []models.WebinarView {
	ids := make([]string, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.PresenterID)
	}
	profiles, err := s.Users.GetPublicProfiles(ctx, ids)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve webinar presenters", zap.Error(err))
	}

	out := make([]models.WebinarView, 0, len(list))
	for _, w := range list {
		v := models.WebinarView{Webinar: w}
		if p, ok := profiles[w.PresenterID]; ok {
			v.Presenter = &p
		}
		out = append(out, v)
	}
	return out
}
