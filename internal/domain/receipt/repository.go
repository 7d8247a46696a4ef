package receipt

import "context"

type ReceiptRepository interface {
	Get(ctx context.Context, employeeID string, year, month int) (Receipt, error)
	Upsert(ctx context.Context, rec Receipt) (Receipt, error)
	Delete(ctx context.Context, employeeID string, year, month int) error
}

type ReceiptService interface {
	Get(ctx context.Context, query ReceiptQuery) (ReceiptResponse, error)
	Save(ctx context.Context, req SaveReceiptRequest) (ReceiptResponse, error)
	Reset(ctx context.Context, query ReceiptQuery) (ReceiptResponse, error)
	RenderPDF(ctx context.Context, query ReceiptQuery) ([]byte, string, error)
}
