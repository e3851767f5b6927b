// Package sheets — реализация products.RowStore поверх Google Sheets.
// Лист играет роль базы данных: одна строка — один товар, колонки A..O.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
}

// New подключается по сервисному ключу и резолвит числовой id листа —
// он нужен для удаления строк через batchUpdate.
func New(ctx context.Context, spreadsheetID, sheetName, credentialsFile string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	c := &Client{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet meta: %w", err)
	}
	found := false
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			c.sheetID = sh.Properties.SheetId
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("лист %q не найден в таблице %s", sheetName, spreadsheetID)
	}
	return c, nil
}

// ListRows возвращает строки данных без заголовка (A2:O).
func (c *Client) ListRows(ctx context.Context) ([][]string, error) {
	rangeSpec := fmt.Sprintf("%s!A2:O", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("values get %s: %w", rangeSpec, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, row []string) error {
	rangeSpec := fmt.Sprintf("%s!A:O", c.sheetName)
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, rangeSpec, &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("values append: %w", err)
	}
	return nil
}

// UpdateRow перезаписывает строку данных с индексом index (0 = A2).
func (c *Client) UpdateRow(ctx context.Context, index int, row []string) error {
	rowNum := index + 2 // +1 заголовок, +1 нумерация листа с единицы
	rangeSpec := fmt.Sprintf("%s!A%d:O%d", c.sheetName, rowNum, rowNum)
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rangeSpec, &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("values update %s: %w", rangeSpec, err)
	}
	return nil
}

// DeleteRow удаляет строку данных с индексом index (0 = A2).
func (c *Client) DeleteRow(ctx context.Context, index int) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    c.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index + 1), // 0 — заголовок
					EndIndex:   int64(index + 2),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d: %w", index, err)
	}
	return nil
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
