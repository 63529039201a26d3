package request

import (
	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type VehicleModelRequest struct {
	ID    string `json:"id" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type AddVehicleRangeRequest struct {
	Brand     string                `json:"brand"`
	Model     string                `json:"model"`
	YearStart YearInput             `json:"year_start"`
	YearEnd   YearInput             `json:"year_end"`
	Selected  []VehicleModelRequest `json:"selected" binding:"dive"`
}

type SelectionRequest struct {
	Selected []VehicleModelRequest `json:"selected" binding:"dive"`
}

func ToVehicleModels(in []VehicleModelRequest) ([]vehicle.Model, error) {
	out := make([]vehicle.Model, 0, len(in))
	if len(in) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &in); err != nil {
		return nil, err
	}
	return out, nil
}

// ToCommand passes years through as sent; an unset year_end means the
// single year year_start.
func (r *AddVehicleRangeRequest) ToCommand() (commands.AddRangeRequest, error) {
	selected, err := ToVehicleModels(r.Selected)
	if err != nil {
		return commands.AddRangeRequest{}, err
	}

	return commands.AddRangeRequest{
		Brand:     r.Brand,
		Model:     r.Model,
		YearStart: r.YearStart.Int(),
		YearEnd:   r.YearEnd.Ptr(),
		Selected:  selected,
	}, nil
}
