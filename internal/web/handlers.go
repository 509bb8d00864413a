package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/roux"
)

// SolveRequest is the /api/solve request body: a Singmaster-notation
// scramble (or an empty string for an already-solved cube).
type SolveRequest struct {
	Scramble string `json:"scramble"`
}

// SolveStepResponse mirrors one named Roux step in the response.
type SolveStepResponse struct {
	Name      string `json:"name"`
	Moves     string `json:"moves"`
	MoveCount int    `json:"move_count"`
}

// SolveResponse is the /api/solve response body.
type SolveResponse struct {
	Solution  string              `json:"solution"`
	MoveCount int                 `json:"move_count"`
	Steps     []SolveStepResponse `json:"steps"`
}

// ScrambleResponse is the /api/scramble response body.
type ScrambleResponse struct {
	Scramble string `json:"scramble"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	scramble, err := cubelet.ParseSequence(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	start := permute.FromMoveSequence(scramble)
	solved, err := roux.Solve(start)
	if err != nil {
		http.Error(w, fmt.Sprintf("error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	if s.history != nil {
		if _, err := s.history.Record(scramble, solved); err != nil {
			log.Printf("cube web: failed to record solve history: %v", err)
		}
	}

	solution := solved.MoveSequence()
	resp := SolveResponse{
		Solution:  solution.String(),
		MoveCount: solution.Len(),
		Steps:     stepResponses(solved),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// stepResponses walks one level of the Action tree, the same way
// history.flattenSteps does, to describe each named Roux step in the
// response.
func stepResponses(solved action.Action) []SolveStepResponse {
	var steps []SolveStepResponse
	for _, child := range solved.Steps.Children() {
		if child.Steps.IsNothing() {
			continue
		}
		moves := child.MoveSequence()
		steps = append(steps, SolveStepResponse{
			Name:      child.Reason.StepName,
			Moves:     moves.String(),
			MoveCount: moves.Len(),
		})
	}
	return steps
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	scramble := cubelet.RandomSequence(25)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScrambleResponse{Scramble: scramble.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const html = `<!DOCTYPE html>
<html>
<head>
	<title>Cube Solver</title>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<style>
		body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
		.container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
		input, button { padding: 10px; margin: 5px; }
		button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
		button:hover { background: #005a8b; }
		.result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; white-space: pre-wrap; }
	</style>
</head>
<body>
	<h1>Cube Solver</h1>
	<div class="container">
		<h2>Solve with Roux</h2>
		<form id="solveForm">
			<label>Scramble:</label><br>
			<input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
			<button type="submit">Solve</button>
			<button type="button" id="scrambleBtn">Random scramble</button>
		</form>
		<div id="result" class="result" style="display: none;"></div>
	</div>

	<script>
		document.getElementById('scrambleBtn').addEventListener('click', async () => {
			const r = await fetch('/api/scramble');
			const data = await r.json();
			document.getElementById('scramble').value = data.scramble;
		});

		document.getElementById('solveForm').addEventListener('submit', async (e) => {
			e.preventDefault();
			const scramble = document.getElementById('scramble').value;
			const result = document.getElementById('result');
			try {
				const response = await fetch('/api/solve', {
					method: 'POST',
					headers: { 'Content-Type': 'application/json' },
					body: JSON.stringify({ scramble })
				});
				if (!response.ok) {
					result.textContent = 'Error: ' + await response.text();
				} else {
					const data = await response.json();
					let text = 'Solution: ' + data.solution + '\n' + data.move_count + ' moves\n\n';
					for (const step of data.steps) {
						text += step.name + ': ' + step.moves + '\n';
					}
					result.textContent = text;
				}
				result.style.display = 'block';
			} catch (err) {
				result.textContent = 'Error: ' + err.message;
				result.style.display = 'block';
			}
		});
	</script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
