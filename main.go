package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegeneration/handlers"
)

func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Quotation generation (trailing-slash aliases kept for
		// compatibility with existing callers).
		se.Router.POST("/genera-preventivo", handlers.HandleGenerateQuote())
		se.Router.POST("/genera-preventivo/", handlers.HandleGenerateQuote())
		se.Router.POST("/genera-preventivo/excel", handlers.HandleGenerateQuoteExcel())

		// Built-in example quotation.
		se.Router.POST("/genera-esempio", handlers.HandleGenerateSample())
		se.Router.POST("/genera-esempio/", handlers.HandleGenerateSample())

		se.Router.GET("/health", handlers.HandleHealth())
		se.Router.GET("/", handlers.HandleHome())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
