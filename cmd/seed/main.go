// Command seed inserts the sample events through the real service path,
// so they go through the same normalization and validation as API writes.
// Image URLs point at the frontend's static assets; the media host is
// bypassed with a local store.
package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"devevents/config"
	"devevents/internal/domain"
	"devevents/internal/repository/postgres"
	"devevents/internal/services"
)

// staticStore maps each upload to a static asset path instead of
// contacting a media host.
type staticStore struct{}

func (staticStore) Upload(ctx context.Context, up *domain.ImageUpload) (string, error) {
	return "/images/" + up.Filename, nil
}

func seedInputs() []*domain.EventInput {
	mk := func(image, title, description, overview, venue, location, date, eventTime, mode, audience, organizer string, agenda, tags []string) *domain.EventInput {
		return &domain.EventInput{
			Title:       title,
			Description: description,
			Overview:    overview,
			Venue:       venue,
			Location:    location,
			Date:        date,
			Time:        eventTime,
			Mode:        mode,
			Audience:    audience,
			Agenda:      agenda,
			Organizer:   organizer,
			Tags:        tags,
			Image: &domain.ImageUpload{
				Filename:    image,
				ContentType: "image/png",
				Data:        strings.NewReader(""),
			},
		}
	}

	return []*domain.EventInput{
		mk("event1.png", "Full Stack Developer Conference 2025",
			"A two-day conference covering the modern full stack, from databases to frontend frameworks.",
			"Talks, hands-on workshops, and networking with full stack practitioners.",
			"BMICH", "Colombo, Sri Lanka", "2025-02-15", "09:00 AM", domain.ModeOffline,
			"Full stack developers", "DevEvents",
			[]string{"Registration", "Keynote", "Workshops", "Panel discussion"},
			[]string{"fullstack", "web", "conference"}),
		mk("event2.png", "React & Next.js Meetup",
			"An evening meetup on React server components and the latest Next.js release.",
			"Two talks and an open Q&A with the local React community.",
			"Online", "Online", "2025-03-05", "06:00 PM", domain.ModeOnline,
			"Frontend developers", "Colombo JS",
			[]string{"Welcome", "React server components", "Next.js in production", "Q&A"},
			[]string{"react", "nextjs", "frontend"}),
		mk("event3.png", "JavaScript Bootcamp",
			"A one-day intensive bootcamp taking beginners from language basics to a working browser app.",
			"Guided exercises with mentors at every table.",
			"Eastern University", "Batticaloa, Sri Lanka", "2025-03-20", "10:00 AM", domain.ModeOffline,
			"Beginners", "DevEvents",
			[]string{"Language basics", "DOM and events", "Build an app"},
			[]string{"javascript", "bootcamp"}),
		mk("event4.png", "AI & Machine Learning Summit",
			"A summit on applied machine learning, model deployment, and the state of the local AI industry.",
			"Industry speakers, research lightning talks, and a careers corner.",
			"Earl's Regency", "Kandy, Sri Lanka", "2025-04-10", "09:30 AM", domain.ModeHybrid,
			"ML engineers and researchers", "AI Forum LK",
			[]string{"Opening", "Applied ML talks", "Lightning talks", "Careers corner"},
			[]string{"ai", "machine-learning", "summit"}),
		mk("event5.png", "DevOps & Cloud Engineering Workshop",
			"A hands-on workshop on CI/CD pipelines, infrastructure as code, and cloud cost control.",
			"Bring a laptop; all exercises run against a sandbox cloud account.",
			"Online", "Online", "2025-04-22", "02:00 PM", domain.ModeOnline,
			"DevOps engineers", "Cloud Native Colombo",
			[]string{"Pipelines", "Infrastructure as code", "Cost control lab"},
			[]string{"devops", "cloud", "workshop"}),
		mk("event6.png", "MERN Stack Hands-on Training",
			"A full-day training building and deploying a MERN application from scratch.",
			"Small groups, one mentor per group, certificate on completion.",
			"Trace Expert City", "Colombo, Sri Lanka", "2025-05-12", "09:00 AM", domain.ModeOffline,
			"Web developers", "DevEvents",
			[]string{"MongoDB and Express", "React frontend", "Node APIs", "Deployment"},
			[]string{"mern", "training", "web"}),
	}
}

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := postgres.NewEventRepository(db)
	svc := services.NewEventService(repo, staticStore{}, 10*time.Second)

	ctx := context.Background()
	for _, in := range seedInputs() {
		event, err := svc.CreateEvent(ctx, in)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateSlug) {
				logger.Info("already seeded", "title", in.Title)
				continue
			}
			logger.Error("seed failed", "title", in.Title, "err", err)
			os.Exit(1)
		}
		logger.Info("seeded", "slug", event.Slug, "id", event.ID)
	}
}
