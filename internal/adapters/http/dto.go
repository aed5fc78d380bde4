package httpadapter

import (
	"strings"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

type newBoardReq struct {
	Rods int `json:"rods"`
}

type boardResp struct {
	Board *domain.Board `json:"board"`
	Total int           `json:"total"`
}

type moveReq struct {
	Board     domain.Board      `json:"board"`
	Index     int               `json:"index"`
	Heaven    int               `json:"heaven"`
	Earth     int               `json:"earth"`
	Challenge *domain.Challenge `json:"challenge,omitempty"`
}

type moveResp struct {
	Board    *domain.Board   `json:"board"`
	RodValue int             `json:"rodValue"`
	Formula  *domain.Formula `json:"formula,omitempty"`
	Total    int             `json:"total"`
	Verdict  string          `json:"verdict"`
}

type formulaReq struct {
	OldValue int `json:"oldValue"`
	NewValue int `json:"newValue"`
}

type formulaResp struct {
	Formula *domain.Formula `json:"formula,omitempty"`
}

type challengeReq struct {
	Type string `json:"type"`
}

type validateReq struct {
	Board     *domain.Board     `json:"board,omitempty"`
	Total     *int              `json:"total,omitempty"`
	Challenge *domain.Challenge `json:"challenge"`
}

type validateResp struct {
	Verdict string `json:"verdict"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseProblemType(s string) (domain.ProblemType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "":
		return domain.Addition, true
	case "sub", "subtraction":
		return domain.Subtraction, true
	case "mul", "multiplication":
		return domain.Multiplication, true
	case "div", "division":
		return domain.Division, true
	case "mixed":
		return domain.Mixed, true
	default:
		return 0, false
	}
}
