// Package bot wires the registration flow, the invite compositor, the guest
// registry and the prize draw into a running Telegram bot.
package bot

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	appconfig "github.com/digitalcpa/invitebot/app/config"
	"github.com/digitalcpa/invitebot/app/draw"
	"github.com/digitalcpa/invitebot/app/flow"
	"github.com/digitalcpa/invitebot/app/guestbook"
	"github.com/digitalcpa/invitebot/app/invite"
	"github.com/digitalcpa/invitebot/app/referral"
	corecmd "github.com/digitalcpa/invitebot/core/cmd"
	coredatabase "github.com/digitalcpa/invitebot/core/database"
	"github.com/digitalcpa/invitebot/core/logger"
	coretelegram "github.com/digitalcpa/invitebot/core/telegram"
	"github.com/digitalcpa/invitebot/core/telegram/commands"
	"github.com/digitalcpa/invitebot/core/telegram/router"
	"github.com/digitalcpa/invitebot/core/telegram/sender"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// App holds all bot services and satisfies the runner's TelegramApp interface.
type App struct {
	cfg        *appconfig.Config
	machine    *flow.Machine
	referrals  *referral.Store
	compositor *invite.Compositor
	registry   guestbook.Store
	pacer      sender.Pacer

	db *sqlx.DB

	rndMu sync.Mutex
	rnd   *rand.Rand

	// selectWinner is replaceable in tests.
	selectWinner func([]guestbook.Record, *rand.Rand) (draw.Result, error)
}

// Bootstrap initializes the logger, assets and the configured registry
// backend, returning a ready-to-run application.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*appconfig.Config)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected config type %T", carrier)
	}

	if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
		return nil, fmt.Errorf("bot: logger init failed: %w", err)
	}

	compositor, err := invite.New(invite.Options{
		TemplateFile:    cfg.Assets.TemplateFile,
		NameFontFile:    cfg.Assets.NameFontFile,
		CompanyFontFile: cfg.Assets.CompanyFontFile,
	})
	if err != nil {
		return nil, fmt.Errorf("bot: compositor init failed: %w", err)
	}

	app := &App{
		cfg:          cfg,
		machine:      flow.NewMachine(flow.NewStore()),
		referrals:    referral.NewStore(),
		compositor:   compositor,
		pacer:        sender.NewPacer(cfg.Core.Pacing.DelayMS),
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		selectWinner: draw.Select,
	}

	if err := app.openRegistry(context.Background()); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) openRegistry(ctx context.Context) error {
	switch a.cfg.Registry.Backend {
	case appconfig.BackendSheets:
		store, err := guestbook.NewSheets(ctx,
			a.cfg.Sheets.SpreadsheetID,
			a.cfg.Sheets.CredentialsFile,
			a.cfg.Sheets.Sheet,
		)
		if err != nil {
			return fmt.Errorf("bot: sheets registry: %w", err)
		}
		a.registry = store
	case appconfig.BackendPostgres:
		db, err := coredatabase.Connect(a.cfg.Database)
		if err != nil {
			return fmt.Errorf("bot: database connect failed: %w", err)
		}
		if err := coredatabase.RunMigrations(a.cfg.Database); err != nil {
			_ = db.Close()
			return fmt.Errorf("bot: migrations failed: %w", err)
		}
		a.db = db
		a.registry = guestbook.NewPostgres(db)
	default:
		a.registry = guestbook.NewDisabled()
	}

	logger.SVCGuestbook.LogAttrs(ctx, slog.LevelInfo, "registry.backend",
		slog.String("backend", a.registry.Backend()),
	)
	return nil
}

// TelegramRunOptions assembles commands, routes and middleware for the runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	core := a.cfg.CoreConfig()
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Начать оформление инвайта",
	})
	reg.RegisterCommand("/whoami", commands.Command{
		Handler:     a.handleWhoami,
		Description: "Показать свой user_id",
	})
	reg.RegisterCommand("/mystats", commands.Command{
		Handler:     a.handleMystats,
		Description: "Сколько человек ты пригласил",
	})
	reg.RegisterCommand("/draw", commands.Command{
		Handler:     a.handleDraw,
		Description: "Провести розыгрыш",
		AdminOnly:   true,
		Hidden:      true,
	})

	if err := reg.RegisterCallback(retryCallbackKey, a.handleRetryPhoto); err != nil {
		return coretelegram.RunOptions{}, err
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminIDs: core.Telegram.AdminIDs,
		OnAdminReject: func(c tele.Context) error {
			return c.Send(textDrawDenied)
		},
	})
	routes = append(routes, router.TextRoutes(a, reg)...)
	routes = append(routes, router.MediaRoutes(router.MediaHandlers{
		Photo:    a.handlePhoto,
		Document: a.handleDocument,
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	return coretelegram.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(core, nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, _ coretelegram.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}
