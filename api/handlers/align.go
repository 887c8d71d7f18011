package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/h2co3/swpara/internal/dihedral"
	"github.com/h2co3/swpara/pkg/swpara"
)

// dihedralPair is the wire representation of a single phi/psi pair.
type dihedralPair struct {
	Phi int16 `json:"phi"`
	Psi int16 `json:"psi"`
}

func toDihedrals(pairs []dihedralPair) []swpara.Dihedral {
	out := make([]swpara.Dihedral, len(pairs))
	for i, p := range pairs {
		out[i] = swpara.Dihedral{Phi: p.Phi, Psi: p.Psi}
	}
	return out
}

// ScoreRequest is the request body for /api/align/score.
type ScoreRequest struct {
	Sequence1     []dihedralPair `json:"sequence1"`
	Sequence2     []dihedralPair `json:"sequence2"`
	ScoringOffset int32          `json:"scoring_offset"`
	GapPenalty    int32          `json:"gap_penalty"`
}

// ScoreResponse is the response body for /api/align/score.
type ScoreResponse struct {
	Score int32 `json:"score"`
}

// ScoreHandler computes the local-alignment score of a single sequence
// pair.
func ScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	params := swpara.ScoringParams{ScoringOffset: req.ScoringOffset, GapPenalty: req.GapPenalty}
	score := swpara.AlignOne(toDihedrals(req.Sequence1), toDihedrals(req.Sequence2), params)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: int32(score)})
}

// BatchRequest is the request body for /api/align/batch.
type BatchRequest struct {
	Sequences     [][]dihedralPair `json:"sequences"`
	ScoringOffset int32            `json:"scoring_offset"`
	GapPenalty    int32            `json:"gap_penalty"`
	Workers       int              `json:"workers"`
}

// BatchResponse is the response body for /api/align/batch.
type BatchResponse struct {
	Scores  [][]int32           `json:"scores"`
	Summary *scoreSummaryPayload `json:"summary,omitempty"`
}

type scoreSummaryPayload struct {
	Count    int     `json:"count"`
	Min      int32   `json:"min"`
	Max      int32   `json:"max"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	Median   float64 `json:"median"`
	P90      float64 `json:"p90"`
}

// BatchHandler computes every pairwise score across a set of sequences and
// the resulting score distribution summary.
func BatchHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	lengths := make([]int16, len(req.Sequences))
	var buffer []dihedral.Dihedral
	for i, seq := range req.Sequences {
		lengths[i] = int16(len(seq))
		buffer = append(buffer, toDihedrals(seq)...)
	}

	set, err := swpara.NewSequenceSet(lengths, buffer)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	params := swpara.ScoringParams{ScoringOffset: req.ScoringOffset, GapPenalty: req.GapPenalty}

	var results swpara.Results
	if req.Workers > 1 {
		results = swpara.AllPairsParallel(set, params, req.Workers)
	} else {
		results = swpara.AllPairs(set, params)
	}

	scores := make([][]int32, len(results))
	for i, row := range results {
		out := make([]int32, len(row))
		for j, s := range row {
			out[j] = int32(s)
		}
		scores[i] = out
	}

	resp := BatchResponse{Scores: scores}
	if summary, err := swpara.Summarize(results); err == nil {
		resp.Summary = &scoreSummaryPayload{
			Count:  summary.Count,
			Min:    int32(summary.Min),
			Max:    int32(summary.Max),
			Mean:   summary.Mean,
			StdDev: summary.StdDev,
			Median: summary.Median,
			P90:    summary.P90,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
