package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/reports"
)

var _ reports.TransactionsExporter = (*TransactionsExporter)(nil)

// TransactionsExporter genera el reporte de transacciones como libro Excel.
type TransactionsExporter struct{}

// NewTransactionsExporter construye el exportador.
func NewTransactionsExporter() *TransactionsExporter {
	return &TransactionsExporter{}
}

// TransactionsWorkbook arma una hoja con una fila por transacción y devuelve
// el archivo en memoria.
func (e *TransactionsExporter) TransactionsWorkbook(rows []dto.TransactionDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"type",
		"item_id",
		"item_name",
		"quantity",
		"date",
		"person",
		"department",
		"notes",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("hoja de transacciones (encabezado): %w", err)
	}

	for i, t := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{t.Type, t.ItemID, t.ItemName, t.Quantity, t.Date, t.Person, t.Department, t.Notes}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("hoja de transacciones (fila %d): %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
