package nakama

import (
	"broadside/internal/domain"
)

type createRequest struct {
	Captain     string `json:"captain,omitempty"`
	Placement   string `json:"placement,omitempty"`
	Scan        string `json:"scan,omitempty"`
	MiddleSweep *bool  `json:"middle_sweep,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
}

type createResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	BoardSize int    `json:"board_size"`
	Placement string `json:"placement"`
	Scan      string `json:"scan"`
}

type sessionRequest struct {
	Token string `json:"token"`
}

type placeShipRequest struct {
	Token  string `json:"token"`
	Length int    `json:"length"`
}

type updateRequest struct {
	Token string `json:"token"`
	Kind  string `json:"kind"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

type placementMessage struct {
	Name        string `json:"name"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
	Length      int    `json:"length"`
}

type moveMessage struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type roundMessage struct {
	Round int `json:"round"`
}

func placementToMessage(p domain.Placement) placementMessage {
	return placementMessage{
		Name:        p.Name,
		Row:         p.Origin.Row,
		Col:         p.Origin.Col,
		Orientation: p.Orientation.String(),
		Length:      p.Length,
	}
}

func coordToMessage(c domain.Coord) moveMessage {
	return moveMessage{Row: c.Row, Col: c.Col}
}

func outcomeFromRequest(req updateRequest) (domain.Outcome, error) {
	kind, err := domain.ParseOutcomeKind(req.Kind)
	if err != nil {
		return domain.Outcome{}, err
	}
	return domain.Outcome{Kind: kind, Coord: domain.Coord{Row: req.Row, Col: req.Col}}, nil
}

// densityRows converts the density field into nested lists accepted by structpb.
func densityRows(g *domain.Grid[int]) []interface{} {
	rows := g.Rows()
	out := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, v := range row {
			cells = append(cells, v)
		}
		out = append(out, cells)
	}
	return out
}
