package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

const dateLayout = "2006-01-02"

const maxRequestBodyBytes = 1 << 20

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := strictJSON.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed on %s", usecase.ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryInt returns fallback when the parameter is absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must use YYYY-MM-DD", usecase.ErrInvalidInput, name)
	}
	return &v, nil
}

func queryPage(r *http.Request) (shared.Page, error) {
	number, err := queryInt(r, "page", 1)
	if err != nil {
		return shared.Page{}, err
	}
	limit, err := queryInt(r, "limit", shared.DefaultPageLimit)
	if err != nil {
		return shared.Page{}, err
	}
	if number < 1 {
		return shared.Page{}, fmt.Errorf("%w: page must be >= 1", usecase.ErrInvalidInput)
	}
	if limit < 1 || limit > shared.MaxPageLimit {
		return shared.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", usecase.ErrInvalidInput, shared.MaxPageLimit)
	}
	return shared.Page{Number: number, Limit: limit}, nil
}

func parseDate(raw string) (time.Time, error) {
	v, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: match_date must use YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return v, nil
}

type listMeta struct {
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Count   int            `json:"count"`
	Filters map[string]any `json:"filters,omitempty"`
}

type teamCreateRequest struct {
	Name   string  `json:"name" validate:"required,min=2,max=120"`
	League *string `json:"league" validate:"omitempty,max=120"`
}

type teamUpdateRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=120"`
	League *string `json:"league" validate:"omitempty,max=120"`
}

type matchCreateRequest struct {
	HomeTeamID int64  `json:"home_team_id" validate:"required,gte=1"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gte=1,nefield=HomeTeamID"`
	HomeScore  *int   `json:"home_score" validate:"required,gte=0,lte=1000"`
	AwayScore  *int   `json:"away_score" validate:"required,gte=0,lte=1000"`
	MatchDate  string `json:"match_date" validate:"required,datetime=2006-01-02"`
}

type matchUpdateRequest struct {
	HomeTeamID *int64  `json:"home_team_id" validate:"omitempty,gte=1"`
	AwayTeamID *int64  `json:"away_team_id" validate:"omitempty,gte=1"`
	HomeScore  *int    `json:"home_score" validate:"omitempty,gte=0,lte=1000"`
	AwayScore  *int    `json:"away_score" validate:"omitempty,gte=0,lte=1000"`
	MatchDate  *string `json:"match_date" validate:"omitempty,datetime=2006-01-02"`
}

type playerCreateRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Position *string `json:"position" validate:"omitempty,max=60"`
	TeamID   int64   `json:"team_id" validate:"required,gte=1"`
}

type playerUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=120"`
	Position *string `json:"position" validate:"omitempty,max=60"`
	TeamID   *int64  `json:"team_id" validate:"omitempty,gte=1"`
}

type playerStatsCreateRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gte=1"`
	MatchID  int64 `json:"match_id" validate:"required,gte=1"`
	Points   *int  `json:"points" validate:"required,gte=0,lte=1000"`
	Assists  *int  `json:"assists" validate:"required,gte=0,lte=1000"`
	Errors   *int  `json:"errors" validate:"required,gte=0,lte=1000"`
}

type playerStatsUpdateRequest struct {
	Points  *int `json:"points" validate:"omitempty,gte=0,lte=1000"`
	Assists *int `json:"assists" validate:"omitempty,gte=0,lte=1000"`
	Errors  *int `json:"errors" validate:"omitempty,gte=0,lte=1000"`
}
