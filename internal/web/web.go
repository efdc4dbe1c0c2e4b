package web

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/padelclub/padelengine/internal/config"
	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/service"
	"github.com/padelclub/padelengine/internal/storage"
	"github.com/padelclub/padelengine/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	engine *service.EngineService
	app    *fiber.App
	cfg    config.Server
	log    *logrus.Entry
}

func New(engine *service.EngineService, cfg config.Server, l *logrus.Logger) *Server {
	server := Server{
		engine: engine,
		cfg:    cfg,
		log:    l.WithField("module", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.ApiRatings)
	})

	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiRatingChanges, server.handleRatingChanges)
	app.Get(webpath.ApiMatches, server.handleMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Get(webpath.ApiPlayers, server.handlePlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayer, server.handlePlayerInfo)
	app.Get(webpath.ApiPlayerBadges, server.handlePlayerBadges)
	app.Post(webpath.ApiRotation, server.handleRotation)
	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.handleImport)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrPlayerNotFound):
		status = fiber.StatusNotFound
	case isBadRequest(err):
		status = fiber.StatusBadRequest
	default:
		s.log.WithError(err).Error("request failed")
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		ErrMissingPlayer,
		ErrTeamSize,
		ErrBadScoreType,
		ErrEmptyPool,
		ErrDuplicatePlayer,
		service.ErrEmptyName,
		service.ErrEmptyTeam,
		service.ErrDrawnScore,
		service.ErrNoScoreType,
		service.ErrUnevenTeams,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code == fiber.StatusBadRequest
	}
	return false
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	if asOf := ctx.Query("asOf"); asOf != "" {
		cutoff, err := time.Parse(time.RFC3339, asOf)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "asOf must be RFC 3339")
		}
		ratings, err := s.engine.GetRatingsAsOf(cutoff)
		if err != nil {
			return err
		}
		return ctx.JSON(convertRatings(ratings))
	}
	ratings, err := s.engine.GetRatings()
	if err != nil {
		return err
	}
	return ctx.JSON(convertRatings(ratings))
}

func (s *Server) handleRatingChanges(ctx *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, ctx.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be RFC 3339")
	}
	to, err := time.Parse(time.RFC3339, ctx.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be RFC 3339")
	}
	changes, err := s.engine.RatingChanges(from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(convertRatingChanges(changes))
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	matches, err := s.engine.GetMatches()
	if err != nil {
		return err
	}
	return ctx.JSON(convertMatches(matches))
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatch
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return err
	}
	created, err := s.engine.CreateMatch(req.convertToDomainMatch())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertMatch(created, nil))
}

func (s *Server) handlePlayers(ctx *fiber.Ctx) error {
	if name := ctx.Query("name"); name != "" {
		player, err := s.engine.GetByName(name)
		if err != nil {
			return err
		}
		return ctx.JSON(convertPlayers([]domain.Player{player}))
	}
	players, err := s.engine.ListPlayers()
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayers(players))
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	created, err := s.engine.CreatePlayer(req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertPlayer(created))
}

func (s *Server) handlePlayerInfo(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id must be a uuid")
	}
	card, err := s.engine.GetPlayerCard(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayerCard(card))
}

func (s *Server) handlePlayerBadges(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id must be a uuid")
	}
	summary, err := s.engine.GetPlayerBadges(id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertBadgeSummary(summary))
}

func (s *Server) handleRotation(ctx *fiber.Ctx) error {
	var req planRotation
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return err
	}
	schedule, err := s.engine.PlanRotation(req.PlayerIDs)
	if err != nil {
		return err
	}
	return ctx.JSON(convertSchedule(schedule))
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.engine.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	if err := s.engine.Import(ctx.Body()); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
