package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

func TestFrameDisplayStockJobUsesComment(t *testing.T) {
	j := domain.JobRecord{
		PatientName:  "STOCK ORDER",
		Comment:      "Ray-Ban 5228 black",
		FrameName:    "should not appear",
		FrameNameAlt: "should not appear either",
	}
	assert.Equal(t, "Ray-Ban 5228 black", j.FrameDisplay())
}

func TestFrameDisplayFrameOnlyJobUsesComment(t *testing.T) {
	j := domain.JobRecord{
		PatientName: "Frame only - Smith",
		Comment:     "Silhouette rimless",
		FrameName:   "catalog name",
	}
	assert.Equal(t, "Silhouette rimless", j.FrameDisplay())
}

func TestFrameDisplayNoItemNoFallsBackToQueryName(t *testing.T) {
	j := domain.JobRecord{
		PatientName:  "Smith, Ann",
		FrameItemNo:  "",
		FrameName:    "catalog name",
		FrameNameAlt: "query name",
	}
	assert.Equal(t, "query name", j.FrameDisplay())
}

func TestFrameDisplayDefaultIsCatalogName(t *testing.T) {
	j := domain.JobRecord{
		PatientName:  "Smith, Ann",
		FrameItemNo:  "F-1001",
		FrameName:    "catalog name",
		FrameNameAlt: "query name",
		Comment:      "note",
	}
	assert.Equal(t, "catalog name", j.FrameDisplay())
}
