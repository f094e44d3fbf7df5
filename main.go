package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"comercial/collections"
	"comercial/config"
	"comercial/handlers"
	"comercial/pricing"
	"comercial/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	api := pricing.NewHTTPClient(cfg.PricingAPIURL, cfg.PricingAPITimeout)
	loader := services.NewLoader(api)

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app, cfg.SeedAdminPassword, cfg.SeedAnalystPassword); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Static SPA from ./static; the UI talks to the /api routes below.
		se.Router.GET("/{path...}", apis.Static(os.DirFS("./static"), true))

		se.Router.POST("/api/login", handlers.HandleLogin(app))

		// Everything else requires an authenticated operator plus the
		// permission of its section.
		g := se.Router.Group("/api")
		g.Bind(apis.RequireAuth("operators"))

		g.POST("/logout", handlers.HandleLogout())

		// ── Reference data ───────────────────────────────────────
		g.GET("/referencias", handlers.HandleReferenceData(loader, api))
		g.GET("/referencias/opciones", handlers.HandleCriterionOptions(loader))

		// ── Tariff tables ────────────────────────────────────────
		g.GET("/tarifario", handlers.RequirePermission(collections.PermTarifas,
			handlers.HandleTariffList(api)))
		g.POST("/tarifario", handlers.RequirePermission(collections.PermTarifas,
			handlers.HandleTariffCreate(api)))
		g.PUT("/tarifario/{id}", handlers.RequirePermission(collections.PermTarifas,
			handlers.HandleTariffUpdate(api)))
		g.DELETE("/tarifario/{id}", handlers.RequirePermission(collections.PermTarifas,
			handlers.HandleTariffDelete(api)))

		g.GET("/tarifarioRango", handlers.RequirePermission(collections.PermTarifasPorRango,
			handlers.HandleRangeTariffList(api)))
		g.POST("/tarifarioRango", handlers.RequirePermission(collections.PermTarifasPorRango,
			handlers.HandleRangeTariffCreate(api)))
		g.PUT("/tarifarioRango/{id}", handlers.RequirePermission(collections.PermTarifasPorRango,
			handlers.HandleRangeTariffUpdate(api)))
		g.DELETE("/tarifarioRango/{id}", handlers.RequirePermission(collections.PermTarifasPorRango,
			handlers.HandleRangeTariffDelete(api)))

		// ── Bulk percentage updates ──────────────────────────────
		g.POST("/actualizacion_masiva_tarifas", handlers.RequirePermission(collections.PermActualizacionTarifas,
			handlers.HandleBulkUpdate(app, api)))
		g.GET("/auditoria", handlers.RequirePermission(collections.PermActualizacionTarifas,
			handlers.HandleAuditList(app)))

		// ── Expiry and reports ───────────────────────────────────
		g.GET("/tarifas-vencidas", handlers.RequirePermission(collections.PermTarifasPorVencer,
			handlers.HandleExpiringClients(api)))
		g.GET("/tarifas_historicas", handlers.RequirePermission(collections.PermTarifasHistoricas,
			handlers.HandleHistoricalTariffs(api)))
		g.GET("/tarifarioUnico", handlers.RequirePermission(collections.PermReportes,
			handlers.HandleClientTariffs(api)))
		g.GET("/tarifario/export/excel", handlers.RequirePermission(collections.PermReportes,
			handlers.HandleTariffExportExcel(api, loader)))
		g.GET("/tarifario/export/pdf", handlers.RequirePermission(collections.PermReportes,
			handlers.HandleTariffExportPDF(api, loader)))

		g.GET("/reportes/valores_prep", handlers.RequirePermission(collections.PermValorXKilo,
			handlers.HandlePrepValueList(api)))
		g.POST("/reportes/valores_prep", handlers.RequirePermission(collections.PermValorXKilo,
			handlers.HandlePrepValueCreate(api)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
