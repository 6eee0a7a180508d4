// FILE: internal/service/tag_service.go
package service

import (
	"context"
	"log"
	"time"

	"promptly-be/internal/repository/unitofwork"
	"promptly-be/pkg/events"
	"promptly-be/pkg/tagcloud"

	"github.com/patrickmn/go-cache"
)

const (
	tagCloudCacheKey = "tag_cloud"
	tagCloudTTL      = 5 * time.Minute
)

type ITagService interface {
	GetTagCloud(ctx context.Context) ([]tagcloud.TagCount, error)
	Invalidate()
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
		cache:      cache.New(tagCloudTTL, 10*time.Minute),
	}
}

// GetTagCloud returns every distinct tag across the active prompt collection
// with its usage count. Recycled prompts do not contribute. The result is
// cached until a prompt mutation invalidates it or the TTL lapses.
func (s *tagService) GetTagCloud(ctx context.Context) ([]tagcloud.TagCount, error) {
	if cached, found := s.cache.Get(tagCloudCacheKey); found {
		return cached.([]tagcloud.TagCount), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	prompts, err := uow.PromptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := tagcloud.Aggregate(prompts)
	s.cache.Set(tagCloudCacheKey, counts, cache.DefaultExpiration)
	return counts, nil
}

func (s *tagService) Invalidate() {
	s.cache.Delete(tagCloudCacheKey)
}

// StartTagInvalidator consumes the event bus and drops the cached tag cloud
// whenever the prompt collection changes. Runs until the context is cancelled
// or the bus closes.
func StartTagInvalidator(ctx context.Context, bus *events.Bus, tags ITagService) error {
	messages, err := bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			env, err := events.Decode(msg)
			if err != nil {
				log.Printf("[WARN] Failed to decode event: %v", err)
				msg.Ack()
				continue
			}

			switch env.Type {
			case events.PromptCreated,
				events.PromptUpdated,
				events.PromptMovedToBin,
				events.PromptRestored,
				events.RecycleBinPurged:
				tags.Invalidate()
			}
			msg.Ack()
		}
	}()

	return nil
}
