package services

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/mmcdole/gofeed"
)

const maxNewsItems = 12

// curatedNews is shown when no feed is configured or the feed is down.
var curatedNews = []models.NewsItem{
	{
		ID:          "1",
		Title:       "International Jazz Festival in Montreal",
		Location:    "Montreal, Canada",
		Date:        "2023-06-28",
		Time:        "19:00",
		Category:    "Music",
		Trending:    true,
		Description: "The world's largest jazz festival celebrates its 42nd edition with international artists.",
	},
	{
		ID:          "2",
		Title:       "Climate Change Conference in Berlin",
		Location:    "Berlin, Germany",
		Date:        "2023-07-05",
		Time:        "09:00",
		Category:    "Environment",
		Description: "Global experts gather to discuss innovative solutions to climate change.",
	},
	{
		ID:          "3",
		Title:       "Contemporary Art Exhibition in Tokyo",
		Location:    "Tokyo, Japan",
		Date:        "2023-07-12",
		Time:        "10:00",
		Category:    "Art",
		Trending:    true,
		Description: "Explore avant-garde works by emerging Asian artists.",
	},
	{
		ID:          "4",
		Title:       "New York Marathon",
		Location:    "New York, USA",
		Date:        "2023-11-05",
		Time:        "08:00",
		Category:    "Sports",
		Description: "The iconic marathon attracts thousands of runners from around the world.",
	},
}

type NewsService struct {
	feedURL string
	parser  *gofeed.Parser
	logger  *slog.Logger
}

func NewNewsService(feedURL string, logger *slog.Logger) *NewsService {
	return &NewsService{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
		logger:  logger,
	}
}

func (ns *NewsService) List(ctx context.Context) []models.NewsItem {
	if ns.feedURL == "" {
		return copyNews(curatedNews)
	}

	parsed, err := ns.parser.ParseURLWithContext(ns.feedURL, ctx)
	if err != nil {
		ns.logger.Warn("news feed unavailable, using curated list", "url", ns.feedURL, "error", err)
		return copyNews(curatedNews)
	}

	entries := newestFirst(parsed.Items)
	items := make([]models.NewsItem, 0, maxNewsItems)
	for i, item := range entries {
		if i == maxNewsItems {
			break
		}
		id := item.GUID
		if id == "" {
			id = item.Link
		}
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		n := models.NewsItem{
			ID:          id,
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
		}
		if item.PublishedParsed != nil {
			n.Date = item.PublishedParsed.Format(time.DateOnly)
			n.Time = item.PublishedParsed.Format("15:04")
		}
		if len(item.Categories) > 0 {
			n.Category = item.Categories[0]
		}
		items = append(items, n)
	}
	if len(items) == 0 {
		return copyNews(curatedNews)
	}
	return items
}

// newestFirst orders dated entries newest first; undated entries follow in
// feed order. gofeed's own sort.Interface dereferences nil dates.
func newestFirst(entries []*gofeed.Item) []*gofeed.Item {
	out := make([]*gofeed.Item, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PublishedParsed, out[j].PublishedParsed
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return out
}

func copyNews(items []models.NewsItem) []models.NewsItem {
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out
}
