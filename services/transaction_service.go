package services

import (
	"encoding/csv"
	"io"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
)

type TransactionService struct {
	Repo *repository.TransactionRepository
}

func NewTransactionService(repo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{Repo: repo}
}

func (s *TransactionService) List(f repository.TransactionFilter) ([]entity.Transaction, error) {
	return s.Repo.Filter(f)
}

// csvColumns is the fixed export order the dashboard expects.
var csvColumns = []string{
	"Transaction ID", "Date", "Customer", "Amount", "Type",
	"Payment Method", "Status", "Reference", "Description",
}

// ExportCSV writes the filtered history as RFC 4180 CSV. encoding/csv
// quotes embedded commas, quotes and newlines, so free-text fields
// cannot corrupt the file.
func (s *TransactionService) ExportCSV(w io.Writer, f repository.TransactionFilter) error {
	txns, err := s.Repo.Filter(f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, t := range txns {
		row := []string{
			t.TransactionID,
			t.Date.Format("2006-01-02 15:04:05"),
			t.CustomerName,
			t.Amount,
			t.Type,
			t.PaymentMethod,
			t.Status,
			t.Reference,
			t.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
