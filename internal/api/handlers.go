package api

import (
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	svc Services
	now func() time.Time
}

func (h *handlers) clock() *time.Time {
	if h.now == nil {
		return nil
	}
	t := h.now()
	return &t
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handlers) today(c *fiber.Ctx) error {
	resp, err := h.svc.Reading.ReadingFor(c.UserContext(), app.ReadingRequest{
		IncludeProgress: c.QueryBool("include_progress", true),
		Now:             h.clock(),
	})
	if err != nil {
		return err
	}
	return c.JSON(toReadingJSON(resp))
}

func (h *handlers) reading(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return &app.ValidationError{Field: "date", Message: "query parameter is required"}
	}
	resp, err := h.svc.Reading.ReadingFor(c.UserContext(), app.ReadingRequest{
		Date:            date,
		IncludeProgress: c.QueryBool("include_progress", true),
		Now:             h.clock(),
	})
	if err != nil {
		return err
	}
	return c.JSON(toReadingJSON(resp))
}

func (h *handlers) plan(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return &app.ValidationError{Field: "year", Value: c.Params("year"), Message: "expected a number"}
	}
	resp, err := h.svc.Reading.PlanView(c.UserContext(), year)
	if err != nil {
		return err
	}
	return c.JSON(toPlanJSON(resp))
}

func (h *handlers) markComplete(c *fiber.Ctx) error {
	var body markCompleteBody
	if err := c.BodyParser(&body); err != nil {
		return &app.ValidationError{Field: "body", Message: err.Error()}
	}
	if body.Date == "" {
		return &app.ValidationError{Field: "date", Message: "required"}
	}
	res, err := h.svc.Progress.MarkComplete(c.UserContext(), app.MarkCompleteRequest{
		Date:     body.Date,
		Chapters: body.Chapters,
		Now:      h.clock(),
	})
	if err != nil {
		return err
	}
	return c.JSON(toMutationJSON(res))
}

func (h *handlers) undo(c *fiber.Ctx) error {
	var body undoBody
	if err := c.BodyParser(&body); err != nil {
		return &app.ValidationError{Field: "body", Message: err.Error()}
	}
	if body.Date == "" {
		return &app.ValidationError{Field: "date", Message: "required"}
	}
	res, err := h.svc.Progress.UndoCompletion(c.UserContext(), app.UndoRequest{
		Date:    body.Date,
		Book:    body.Book,
		Chapter: body.Chapter,
		Now:     h.clock(),
	})
	if err != nil {
		return err
	}
	return c.JSON(toMutationJSON(res))
}

func (h *handlers) progress(c *fiber.Ctx) error {
	view, err := h.svc.Progress.Progress(c.UserContext(), c.Params("date"))
	if err != nil {
		return err
	}
	return c.JSON(toProgressViewJSON(view))
}

func (h *handlers) progressRange(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	days, err := h.svc.Progress.Range(c.UserContext(), app.RangeRequest{Start: start, End: end})
	if err != nil {
		return err
	}
	return c.JSON(toRangeJSON(start, end, days))
}

func (h *handlers) stats(c *fiber.Ctx) error {
	resp, err := h.svc.Stats.Current(c.UserContext(), app.StatsRequest{Now: h.clock()})
	if err != nil {
		return err
	}
	return c.JSON(toStatsJSON(resp))
}
