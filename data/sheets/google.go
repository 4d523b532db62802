package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/ncobase/todosheet/config"
)

const callTimeout = 10 * time.Second

// googleGrid reads and writes one worksheet through the Google Sheets
// API.
type googleGrid struct {
	svc           *gsheets.Service
	spreadsheetID string
	worksheet     string
}

// NewGoogle connects to the configured spreadsheet. Credentials are
// resolved from the configured file, inline JSON, or application
// default credentials, in that order.
func NewGoogle(ctx context.Context, c *config.Sheets) (Grid, error) {
	if c.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is required", config.ErrInvalid)
	}

	opts, err := credentialsOption(ctx, c)
	if err != nil {
		return nil, err
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	return &googleGrid{
		svc:           svc,
		spreadsheetID: c.SpreadsheetID,
		worksheet:     c.Worksheet,
	}, nil
}

func credentialsOption(ctx context.Context, c *config.Sheets) ([]option.ClientOption, error) {
	if c.CredentialsFile != "" {
		return []option.ClientOption{
			option.WithCredentialsFile(c.CredentialsFile),
			option.WithScopes(gsheets.SpreadsheetsScope),
		}, nil
	}
	if c.CredentialsJSON != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(c.CredentialsJSON), gsheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuth, err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}
	creds, err := google.FindDefaultCredentials(ctx, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}

func (g *googleGrid) HeaderRow(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	rng := fmt.Sprintf("%s!1:1", g.worksheet)
	res, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, gridErr("read header", err)
	}
	if len(res.Values) == 0 {
		return nil, nil
	}
	return toStrings(res.Values[0]), nil
}

func (g *googleGrid) Rows(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, gridErr("read rows", err)
	}
	rows := make([][]string, 0, len(res.Values))
	for _, row := range res.Values {
		rows = append(rows, toStrings(row))
	}
	return rows, nil
}

func (g *googleGrid) UpdateRange(ctx context.Context, a1Range string, values [][]string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	rng := fmt.Sprintf("%s!%s", g.worksheet, a1Range)
	body := &gsheets.ValueRange{Values: toValues(values)}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, body).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return gridErr("update "+a1Range, err)
	}
	return nil
}

func (g *googleGrid) Append(ctx context.Context, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body := &gsheets.ValueRange{Values: toValues([][]string{row})}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, g.worksheet, body).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return gridErr("append row", err)
	}
	return nil
}

func (g *googleGrid) UpdateCells(ctx context.Context, cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	data := make([]*gsheets.ValueRange, 0, len(cells))
	for _, cell := range cells {
		rng := fmt.Sprintf("%s!%s%d", g.worksheet, ColumnLetter(cell.Col), cell.Row)
		data = append(data, &gsheets.ValueRange{
			Range:  rng,
			Values: [][]any{{cell.Value}},
		})
	}
	body := &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	_, err := g.svc.Spreadsheets.Values.BatchUpdate(g.spreadsheetID, body).Context(ctx).Do()
	if err != nil {
		return gridErr(fmt.Sprintf("batch update %d cells", len(cells)), err)
	}
	return nil
}

func (g *googleGrid) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := g.svc.Spreadsheets.Values.Clear(g.spreadsheetID, g.worksheet, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return gridErr("clear sheet", err)
	}
	return nil
}

// gridErr classifies a Sheets API failure. Credential rejections map to
// ErrAuth, everything else to ErrUnavailable.
func gridErr(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrAuth, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}

func toStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func toValues(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		out[i] = vals
	}
	return out
}
