package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
)

const (
	contentType = "application/json"

	gamePath = "/game"
	movePath = "/game/move"

	// maxErrorBody caps how much of a failed response is read when looking for validation details.
	maxErrorBody = 64 << 10
)

const (
	OpFetch = "fetch"
	OpReset = "reset"
	OpMove  = "move"
)

var ErrDecodeResponse = errors.New("failed to decode game state")

// ResponseError is returned when the game server answers with a non-success status.
type ResponseError struct {
	Op         string
	StatusCode int
	Details    []entity.ValidationDetail
}

func (that *ResponseError) Error() string {
	if len(that.Details) == 0 {
		return fmt.Sprintf("%s: unexpected response status %d", that.Op, that.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected response status %d: %s", that.Op, that.StatusCode, that.DetailMessages())
}

// DetailMessages joins the validation messages the server sent, in order.
func (that *ResponseError) DetailMessages() string {
	messages := make([]string, 0, len(that.Details))
	for _, detail := range that.Details {
		messages = append(messages, detail.Msg)
	}
	return strings.Join(messages, ", ")
}

type Client struct {
	client  *http.Client
	baseURL *url.URL
}

// New - creates a client for the game server at baseURL. A nil httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid game server url: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid game server url %q: scheme and host are required", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		client:  httpClient,
		baseURL: parsed,
	}, nil
}

// GetGame - fetches the current game snapshot.
func (that *Client) GetGame(ctx context.Context) (*entity.GameState, error) {
	return that.do(ctx, OpFetch, http.MethodGet, gamePath, nil)
}

// ResetGame - starts a new game, or resets the running one.
func (that *Client) ResetGame(ctx context.Context) (*entity.GameState, error) {
	return that.do(ctx, OpReset, http.MethodPost, gamePath, nil)
}

// MakeMove - submits a move and returns the resulting snapshot.
func (that *Client) MakeMove(ctx context.Context, move entity.Move) (*entity.GameState, error) {
	body, err := json.Marshal(move)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal move: %w", err)
	}

	return that.do(ctx, OpMove, http.MethodPost, movePath, body)
}

func (that *Client) do(ctx context.Context, op, method, endpoint string, body []byte) (*entity.GameState, error) {
	req, err := that.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Details:    readDetails(resp.Body),
		}
	}

	state, err := decodeState(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
	}

	return state, nil
}

// decodeState reads a snapshot and rejects one that is missing its board or result, or is inconsistent.
func decodeState(body io.Reader) (*entity.GameState, error) {
	var payload struct {
		Board         *entity.Board  `json:"board"`
		CurrentPlayer *entity.Mark   `json:"current_player"`
		Result        *entity.Result `json:"result"`
	}

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Board == nil || payload.Result == nil {
		return nil, fmt.Errorf("%w: board and result are required", apperror.ErrInvalidGameState)
	}

	state := &entity.GameState{
		Board:  *payload.Board,
		Result: *payload.Result,
	}

	// a finished game may come without a player to move.
	if payload.CurrentPlayer != nil {
		state.CurrentPlayer = *payload.CurrentPlayer
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

func (that *Client) buildURL(endpoint string) string {
	return that.baseURL.JoinPath(endpoint).String()
}

func (that *Client) newRequest(ctx context.Context, method, endpoint string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.buildURL(endpoint), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", contentType)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// readDetails extracts {"detail": [{"msg": ...}]} from a failed response. Any other body yields nothing.
func readDetails(body io.Reader) []entity.ValidationDetail {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}

	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&payload); err != nil {
		return nil
	}

	var details []entity.ValidationDetail
	if err := json.Unmarshal(payload.Detail, &details); err != nil {
		return nil
	}

	return details
}
