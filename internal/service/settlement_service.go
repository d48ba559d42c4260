package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/nomina-settlement/internal/calendar"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/receipt"
	"github.com/nurpe/nomina-settlement/internal/settlement"
)

type DocumentGenerator interface {
	Generate(s *model.Settlement) ([]byte, error)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatText, FormatPDF, FormatXLSX:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, raw)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

type SettlementService struct {
	engine *settlement.Engine
	excel  DocumentGenerator
	pdf    DocumentGenerator
}

type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Classification describes one calendar day and the percentages that apply
// to it.
type Classification struct {
	Date              string         `json:"date"`
	Day               model.DayClass `json:"day"`
	DayTag            model.DayTag   `json:"day_tag,omitempty"`
	SundayRate        float64        `json:"sunday_rate"`
	DayOvertimeRate   float64        `json:"day_overtime_rate"`
	NightOvertimeRate float64        `json:"night_overtime_rate"`
}

func NewSettlementService(engine *settlement.Engine, excel, pdf DocumentGenerator) *SettlementService {
	return &SettlementService{
		engine: engine,
		excel:  excel,
		pdf:    pdf,
	}
}

// Compute returns a *settlement.FieldError when the request is rejected.
func (s *SettlementService) Compute(ctx context.Context, req model.Request) (*model.Settlement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.engine.Compute(req)
}

func (s *SettlementService) Validate(req model.Request) settlement.ValidationErrors {
	return settlement.Validate(req)
}

func (s *SettlementService) Classify(raw string) (*Classification, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	day := s.engine.Calendar().Classify(date)
	table := s.engine.Rates()
	return &Classification{
		Date:              calendar.ISO(date),
		Day:               day,
		DayTag:            day.Tag(),
		SundayRate:        table.SundayRate(date),
		DayOvertimeRate:   table.Rate(model.KindDayOvertime, date, day.SundayOrHoliday()),
		NightOvertimeRate: table.Rate(model.KindNightOvertime, date, day.SundayOrHoliday()),
	}, nil
}

// Render computes the settlement and encodes it in the requested format.
func (s *SettlementService) Render(ctx context.Context, req model.Request, format Format) (*Document, error) {
	result, err := s.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.RenderSettlement(result, format)
}

func (s *SettlementService) RenderSettlement(result *model.Settlement, format Format) (*Document, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case FormatJSON:
		content, err = json.MarshalIndent(result, "", "  ")
	case FormatText:
		content = []byte(receipt.Render(result))
	case FormatPDF:
		content, err = generate(s.pdf, result)
	case FormatXLSX:
		content, err = generate(s.excel, result)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, format, err)
	}

	return &Document{
		FileName:    buildFileName(result, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

func generate(gen DocumentGenerator, result *model.Settlement) ([]byte, error) {
	if gen == nil {
		return nil, errors.New("generator not configured")
	}
	return gen.Generate(result)
}

func buildFileName(result *model.Settlement, format Format) string {
	employee := sanitizeFileName(result.Employee.Name)
	if id := sanitizeFileName(result.Employee.Identification); id != "" {
		if employee == "" {
			employee = id
		} else {
			employee = id + "-" + employee
		}
	}
	if employee == "" {
		employee = "empleado"
	}
	period := strings.ReplaceAll(result.ReferenceDate, "-", "")
	return fmt.Sprintf("nomina-%s-%s.%s", strings.ToLower(employee), period, format.Extension())
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
