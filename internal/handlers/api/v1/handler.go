// Package apiv1 exposes the battle service over REST. It translates JSON
// requests into orchestrator inputs and structured errors into HTTP status
// codes; no battle rules live here.
package apiv1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/errors"
	battleorch "github.com/aetherium/battle-api/internal/orchestrators/battle"
)

// HandlerConfig holds the dependencies for the v1 API handler
type HandlerConfig struct {
	BattleService battleorch.Service
}

// Validate ensures all required dependencies are provided
func (cfg *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.BattleService == nil {
		vb.RequiredField("BattleService")
	}

	return vb.Build()
}

// Handler serves the v1 battle routes.
type Handler struct {
	battleService battleorch.Service
}

// NewHandler creates a new v1 API handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		battleService: cfg.BattleService,
	}, nil
}

// Register mounts the battle routes on the given group.
func (h *Handler) Register(g *echo.Group) {
	g.POST("/battle/start", h.startBattle)
	g.POST("/battle/turn", h.submitTurn)
	g.GET("/battle/:id", h.getBattle)
}

type startBattleRequest struct {
	CharacterID string `json:"characterId" validate:"required"`
	EnemyType   string `json:"enemyType" validate:"omitempty,oneof=goblin orc skeleton dragon"`
}

type startBattleResponse struct {
	BattleID    string               `json:"battleId"`
	BattleState entities.BattleState `json:"battleState"`
	Enemy       string               `json:"enemy"`
	Message     string               `json:"message"`
}

func (h *Handler) startBattle(c echo.Context) error {
	var req startBattleRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errors.InvalidArgument("request body is not valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.battleService.StartBattle(c.Request().Context(), &battleorch.StartBattleInput{
		CharacterID: req.CharacterID,
		EnemyType:   entities.EnemyType(req.EnemyType),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, startBattleResponse{
		BattleID:    out.BattleID,
		BattleState: out.State,
		Enemy:       out.EnemyName,
		Message:     out.Message,
	})
}

type battleTurnRequest struct {
	BattleID string `json:"battleId" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=attack defend skill item"`
	ItemID   int32  `json:"itemId"`
}

type battleTurnResponse struct {
	BattleState       entities.BattleState  `json:"battleState"`
	ActionResult      entities.LogEntry     `json:"actionResult"`
	EnemyActionResult *entities.LogEntry    `json:"enemyActionResult,omitempty"`
	BattleEnded       bool                  `json:"battleEnded"`
	Result            entities.BattleResult `json:"result,omitempty"`
	ExperienceGained  int64                 `json:"experienceGained,omitempty"`
	TokensEarned      int64                 `json:"tokensEarned,omitempty"`
}

func (h *Handler) submitTurn(c echo.Context) error {
	var req battleTurnRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errors.InvalidArgument("request body is not valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	kind, ok := entities.ParseActionKind(req.Action)
	if !ok {
		return writeError(c, errors.InvalidArgumentf("unknown action %q", req.Action))
	}

	out, err := h.battleService.SubmitTurn(c.Request().Context(), &battleorch.SubmitTurnInput{
		BattleID: req.BattleID,
		Action:   entities.TurnAction{Kind: kind, ItemID: req.ItemID},
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := battleTurnResponse{
		BattleState:       out.State,
		ActionResult:      out.CharacterEntry,
		EnemyActionResult: out.EnemyEntry,
		BattleEnded:       out.Ended,
	}
	if out.Ended {
		resp.Result = out.Result
		resp.ExperienceGained = out.ExperienceGained
		resp.TokensEarned = out.TokensEarned
	}

	return c.JSON(http.StatusOK, resp)
}

type getBattleResponse struct {
	Battle    *entities.Battle  `json:"battle"`
	Character *entities.Summary `json:"character,omitempty"`
}

func (h *Handler) getBattle(c echo.Context) error {
	out, err := h.battleService.GetBattle(c.Request().Context(), &battleorch.GetBattleInput{
		ID: c.Param("id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, getBattleResponse{
		Battle:    out.Battle,
		Character: out.Character,
	})
}

// writeError renders a structured error as JSON with the code's HTTP status.
// Error meta rides along in the body so clients can act on details like the
// conflicting battle ID without parsing the message.
func writeError(c echo.Context, err error) error {
	code := errors.GetCode(err)

	body := echo.Map{"error": errors.GetMessage(err)}
	for k, v := range errors.GetMeta(err) {
		body[k] = v
	}

	return c.JSON(code.HTTPStatus(), body)
}
