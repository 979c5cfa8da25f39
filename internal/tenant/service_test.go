package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contalibre-dev/contalibre/internal/model"
)

type fakeRepo struct {
	companies []model.Company
}

func (r *fakeRepo) Create(_ context.Context, c *model.Company) error {
	c.ID = uint(len(r.companies) + 1)
	r.companies = append(r.companies, *c)
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id uint) (*model.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(context.Context) ([]model.Company, error) {
	return r.companies, nil
}

type fakeInstaller struct {
	installed []uint
	err       error
}

func (i *fakeInstaller) Install(_ context.Context, companyID uint) error {
	if i.err != nil {
		return i.err
	}
	i.installed = append(i.installed, companyID)
	return nil
}

func TestCreate_ProvisionsChart(t *testing.T) {
	repo := &fakeRepo{}
	installer := &fakeInstaller{}
	svc := NewService(repo, installer)

	c, err := svc.Create(context.Background(), "  Ferretería El Tornillo  ", "1023456789")
	require.NoError(t, err)

	assert.Equal(t, "Ferretería El Tornillo", c.Name)
	assert.Equal(t, "1023456789", c.TaxID)
	assert.Equal(t, []uint{c.ID}, installer.installed)
}

func TestCreate_NameRequired(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeInstaller{})
	_, err := svc.Create(context.Background(), "   ", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestCreate_InstallFailure(t *testing.T) {
	installErr := errors.New("db down")
	svc := NewService(&fakeRepo{}, &fakeInstaller{err: installErr})
	_, err := svc.Create(context.Background(), "Acme", "")
	assert.ErrorIs(t, err, installErr)
}

func TestContextValid(t *testing.T) {
	assert.False(t, Context{}.Valid())
	assert.True(t, Context{CompanyID: 7}.Valid())
}
