package api

import (
	"bytes"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/importer"
	"github.com/gofiber/fiber/v2"
)

type importResultJSON struct {
	Success  bool  `json:"success"`
	Imported int   `json:"imported"`
	Replaced int   `json:"replaced"`
	Skipped  int   `json:"skipped"`
	Years    []int `json:"years"`
}

func (h *handlers) exportYear(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return &app.ValidationError{Field: "year", Value: c.Params("year"), Message: "expected a number"}
	}
	docs, err := h.svc.Transfer.Export(c.UserContext(), year)
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// importDocuments accepts the same layouts as the import command: a JSON
// array or one document per line.
func (h *handlers) importDocuments(c *fiber.Ctx) error {
	docs, err := importer.Decode(bytes.NewReader(c.Body()))
	if err != nil {
		return &app.ValidationError{Field: "body", Message: err.Error()}
	}
	res, err := h.svc.Transfer.ImportDocuments(c.UserContext(), docs, c.QueryBool("overwrite", false))
	if err != nil {
		return err
	}
	years := res.Years
	if years == nil {
		years = []int{}
	}
	return c.JSON(importResultJSON{
		Success:  true,
		Imported: res.Imported,
		Replaced: res.Replaced,
		Skipped:  res.Skipped,
		Years:    years,
	})
}
