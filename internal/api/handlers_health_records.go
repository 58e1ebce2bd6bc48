package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tannerhall/hearth/internal/services"
)

type healthRecordRequest struct {
	RecordType  string   `json:"record_type"`
	RecordDate  string   `json:"record_date"`
	Systolic    *int     `json:"systolic"`
	Diastolic   *int     `json:"diastolic"`
	HeartRate   *int     `json:"heart_rate"`
	Weight      *float64 `json:"weight"`
	BloodSugar  *int     `json:"blood_sugar"`
	Note        string   `json:"note"`
	MeasureTime string   `json:"measure_time"`
}

func (req healthRecordRequest) toInput() (services.HealthRecordInput, error) {
	input := services.HealthRecordInput{
		RecordType:  req.RecordType,
		Systolic:    req.Systolic,
		Diastolic:   req.Diastolic,
		HeartRate:   req.HeartRate,
		Weight:      req.Weight,
		BloodSugar:  req.BloodSugar,
		Note:        req.Note,
		MeasureTime: req.MeasureTime,
	}
	if req.RecordDate != "" {
		parsed, err := time.Parse(dayLayout, req.RecordDate)
		if err != nil {
			return services.HealthRecordInput{}, err
		}
		input.RecordDate = &parsed
	}
	return input, nil
}

// queryRange parses the from/to query parameters as an inclusive day range.
func queryRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	from, err := time.Parse(dayLayout, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dayLayout, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (handler *Handler) CreateHealthRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := healthRecordRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record date"})
	}

	record, err := handler.records.CreateRecord(user, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateHealthRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}

	req := healthRecordRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record date"})
	}

	record, err := handler.records.UpdateRecord(user, uint(recordID), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeleteHealthRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}

	if err := handler.records.DeleteRecord(user, uint(recordID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) MyHealthRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	from, to, ok := queryRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date range"})
	}

	records, err := handler.records.MyRecords(user, c.Query("type"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) FamilyHealthRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	from, to, ok := queryRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date range"})
	}

	records, err := handler.records.FamilyRecords(user, c.Query("type"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) RecentHealthRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	records, err := handler.records.RecentRecords(user, c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) HealthRecordChart(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	from, to, ok := queryRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date range"})
	}

	records, err := handler.records.ChartData(user, c.Query("type"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}
