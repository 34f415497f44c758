package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/common"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/metrics"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/roles"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/teams"
)

const pageCacheTTL = 5 * time.Minute

// TeamPage is the render-ready team page: branch advisors ranked by the
// advisor order, the executive committee ranked by the student role order,
// and one block per chapter.
type TeamPage struct {
	Advisors   []gormModels.TeamMember `json:"advisors"`
	Executives []gormModels.TeamMember `json:"executives"`
	Chapters   []ChapterView           `json:"chapters"`
}

// ChapterView decorates a chapter group with its display theme.
type ChapterView struct {
	teams.ChapterGroup
	Theme teams.ChapterTheme `json:"theme"`
}

// Overview is the home page payload, assembled from three collections.
type Overview struct {
	UpcomingEvents []gormModels.Event        `json:"upcomingEvents"`
	LatestNews     []gormModels.NewsPost     `json:"latestNews"`
	Gallery        []gormModels.GalleryImage `json:"gallery"`
}

// Builder assembles the public read-side payloads. Results are cached for a
// short TTL; mutating handlers call Invalidate.
type Builder struct {
	members *repositories.TeamMemberRepository
	events  *repositories.EventRepository
	news    *repositories.NewsRepository
	gallery *repositories.GalleryRepository
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewBuilder(
	members *repositories.TeamMemberRepository,
	events *repositories.EventRepository,
	news *repositories.NewsRepository,
	gallery *repositories.GalleryRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *Builder {
	return &Builder{
		members: members,
		events:  events,
		news:    news,
		gallery: gallery,
		cache:   cache,
		metrics: metricsReg,
	}
}

// TeamPage builds the grouped team page from the full member list.
func (b *Builder) TeamPage(ctx context.Context) (*TeamPage, error) {
	var page TeamPage
	if b.cached(constants.CachePrefixTeamPage, &page) {
		return &page, nil
	}

	members, err := b.members.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	built := BuildTeamPage(members)
	b.store(constants.CachePrefixTeamPage, built)
	return built, nil
}

// BuildTeamPage is the pure assembly step, split out so it is testable
// without a database.
func BuildTeamPage(members []gormModels.TeamMember) *TeamPage {
	var advisors, executives []gormModels.TeamMember
	for _, m := range members {
		if m.Affiliation != constants.AffiliationMain {
			continue
		}
		cat := roles.ResolveRoleKey(m.Role, m.RoleKey)
		if roles.OrderRank(constants.MainAdvisorOrder, cat) < len(constants.MainAdvisorOrder) {
			advisors = append(advisors, m)
		} else {
			executives = append(executives, m)
		}
	}
	teams.SortByRoleOrder(advisors, constants.MainAdvisorOrder)
	teams.SortByRoleOrder(executives, constants.StudentRoleOrder)

	groups := teams.GroupChapterMembers(members)
	chapters := make([]ChapterView, 0, len(groups))
	for _, g := range groups {
		chapters = append(chapters, ChapterView{
			ChapterGroup: g,
			Theme:        teams.ThemeFor(g.Slug),
		})
	}

	return &TeamPage{
		Advisors:   advisors,
		Executives: executives,
		Chapters:   chapters,
	}
}

// Chapter returns one chapter block by slug.
func (b *Builder) Chapter(ctx context.Context, slug string) (*ChapterView, error) {
	page, err := b.TeamPage(ctx)
	if err != nil {
		return nil, err
	}
	for i := range page.Chapters {
		if page.Chapters[i].Slug == slug {
			return &page.Chapters[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Overview fans out over the three home page collections concurrently.
func (b *Builder) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview
	if b.cached(constants.CachePrefixOverview, &overview) {
		return &overview, nil
	}

	now := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := b.events.ListUpcoming(gctx, now)
		if err != nil {
			return err
		}
		overview.UpcomingEvents = events
		return nil
	})
	g.Go(func() error {
		posts, err := b.news.ListPublished(gctx)
		if err != nil {
			return err
		}
		overview.LatestNews = posts
		return nil
	})
	g.Go(func() error {
		images, err := b.gallery.List(gctx, "")
		if err != nil {
			return err
		}
		overview.Gallery = images
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}

	b.store(constants.CachePrefixOverview, &overview)
	return &overview, nil
}

// Invalidate drops the cached pages after a content mutation.
func (b *Builder) Invalidate() {
	b.cache.Delete(string(constants.CachePrefixTeamPage))
	b.cache.Delete(string(constants.CachePrefixOverview))
}

// cached loads a page from the cache into dst. Pages are cached as JSON so
// the in-memory and Redis backends behave identically.
func (b *Builder) cached(prefix constants.CachePrefix, dst interface{}) bool {
	val, found := b.cache.Get(string(prefix))
	if !found {
		b.metrics.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
		return false
	}
	data, ok := val.([]byte)
	if !ok {
		b.metrics.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		b.metrics.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
		return false
	}
	b.metrics.CacheHitsTotal.WithLabelValues(string(prefix)).Inc()
	return true
}

func (b *Builder) store(prefix constants.CachePrefix, page interface{}) {
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	b.cache.Set(string(prefix), data, pageCacheTTL)
}
