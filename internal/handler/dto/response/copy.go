package response

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Read views carry uuid.UUID and time.Time; responses expose strings and Unix seconds.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func copyView(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		slog.Error("Failed to map read view to response", "error", err.Error())
	}
}

type CreatedResponse struct {
	ID string `json:"id"`
}

func FromID(id uuid.UUID) *CreatedResponse {
	return &CreatedResponse{ID: id.String()}
}
