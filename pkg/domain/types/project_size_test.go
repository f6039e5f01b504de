package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

func TestProjectSize_IsValid(t *testing.T) {
	tests := []struct {
		name string
		size types.ProjectSize
		want bool
	}{
		{name: "small", size: types.ProjectSizeSmall, want: true},
		{name: "medium", size: types.ProjectSizeMedium, want: true},
		{name: "large", size: types.ProjectSizeLarge, want: true},
		{name: "uppercase", size: types.ProjectSize("Large"), want: false},
		{name: "unknown", size: types.ProjectSize("huge"), want: false},
		{name: "empty", size: types.ProjectSize(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.size.IsValid()).True()
			} else {
				gt.B(t, tt.size.IsValid()).False()
			}
		})
	}
}

func TestParseProjectSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ProjectSize
		wantErr bool
	}{
		{name: "valid small", input: "small", want: types.ProjectSizeSmall},
		{name: "valid large", input: "large", want: types.ProjectSizeLarge},
		{name: "invalid", input: "xl", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseProjectSize(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.Value(t, got).Equal(tt.want)
			}
		})
	}
}

func TestAllProjectSizes(t *testing.T) {
	sizes := types.AllProjectSizes()
	gt.A(t, sizes).Length(3)
	for _, s := range sizes {
		gt.B(t, s.IsValid()).True()
	}
	gt.Value(t, types.ProjectSizeMedium.Label()).Equal("Medium")
}
