package board

import (
	"github.com/emiliopalmerini/projectboard/internal/validate"
)

// ProjectInput turns form submissions into new projects.
type ProjectInput struct {
	store Store
}

func NewProjectInput(store Store) *ProjectInput {
	return &ProjectInput{store: store}
}

// Submit validates the form and adds the project. On error the store is not
// touched.
func (in *ProjectInput) Submit(form validate.ProjectForm) (validate.ProjectInput, error) {
	v, err := form.Gather()
	if err != nil {
		return validate.ProjectInput{}, err
	}
	in.store.AddProject(v.Title, v.Description, v.People)
	return v, nil
}
