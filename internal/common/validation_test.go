package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/models/dtos/requests"
)

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(&requests.CreateBlockReq{Status: "DONE"})
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	require.Equal(t, "Required", fields["number"])
	require.Equal(t, "Required", fields["territoryId"])
	require.Contains(t, fields["status"], "Must be one of")
}

func TestValidateStruct_PartialUpdates(t *testing.T) {
	require.Nil(t, ValidateStruct(&requests.UpdateTerritoryReq{}))

	url := "https://maps.example/" + strings.Repeat("x", 2048)
	errs := ValidateStruct(&requests.UpdateTerritoryReq{MapImageURL: &url})
	require.Len(t, errs, 1)
	require.Equal(t, "mapImageUrl", errs[0].Field)

	role := constants.UserRole("OWNER")
	errs = ValidateStruct(&requests.UpdateUserReq{Role: &role})
	require.Len(t, errs, 1)
	require.Equal(t, "role", errs[0].Field)
}
