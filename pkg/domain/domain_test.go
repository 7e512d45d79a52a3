package domain_test

import (
	"encoding/json"
	"portal/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAbstractStatus_CanTransitionTo(t *testing.T) {
	allowed := map[domain.AbstractStatus][]domain.AbstractStatus{
		domain.AbstractStatusPending: {
			domain.AbstractStatusUnderReview, domain.AbstractStatusApproved, domain.AbstractStatusRejected,
		},
		domain.AbstractStatusUnderReview: {domain.AbstractStatusApproved, domain.AbstractStatusRejected},
	}
	all := []domain.AbstractStatus{
		domain.AbstractStatusPending,
		domain.AbstractStatusUnderReview,
		domain.AbstractStatusApproved,
		domain.AbstractStatusRejected,
	}

	for _, from := range all {
		require.True(t, from.Valid())
		for _, to := range all {
			require.Equal(t, contains(allowed[from], to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	require.False(t, domain.AbstractStatus("archived").Valid())
}

func contains(list []domain.AbstractStatus, s domain.AbstractStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

func TestRole(t *testing.T) {
	require.False(t, domain.RoleStudent.CanReview())
	require.True(t, domain.RoleFaculty.CanReview())
	require.True(t, domain.RoleAdmin.CanReview())
	require.False(t, domain.Role("guest").Valid())
}

func TestIDs_JSON(t *testing.T) {
	u := uuid.MustParse("7f1c1bde-8f2a-4c65-9b43-1f0c0f6f7a11")
	a := domain.Abstract{ID: domain.AbstractID(u), AuthorID: domain.UserID(u)}

	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.Contains(t, string(b), `"id":"7f1c1bde-8f2a-4c65-9b43-1f0c0f6f7a11"`)
	require.Contains(t, string(b), `"authorId":"7f1c1bde-8f2a-4c65-9b43-1f0c0f6f7a11"`)

	var back domain.Abstract
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, a.ID, back.ID)

	id, err := domain.ParseAbstractID(u.String())
	require.NoError(t, err)
	require.Equal(t, a.ID, id)

	_, err = domain.ParseUserID("not-a-uuid")
	require.Error(t, err)
}

func TestExtractedEntities(t *testing.T) {
	e := domain.ExtractedEntities{
		Technologies:  []string{"Python", "Docker"},
		Domains:       []string{"Health"},
		Methodologies: nil,
	}

	require.Equal(t, 3, e.Total())
	require.Equal(t, []string{"Health"}, e.Terms(domain.CategoryDomain))
	require.Nil(t, e.Terms(domain.Category("other")))
}

func TestAnnotation_Name(t *testing.T) {
	require.Equal(t, "Label", domain.Annotation{Spot: "s", Title: "Title", Label: "Label"}.Name())
	require.Equal(t, "Title", domain.Annotation{Spot: "s", Title: "Title"}.Name())
	require.Equal(t, "s", domain.Annotation{Spot: "s"}.Name())
}
