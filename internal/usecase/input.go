package usecase

import (
	"errors"
	"fmt"
	"strings"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
	"jobfit/internal/textproc"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// validationError turns validator output into ErrInvalidInput listing the failed fields.
func validationError(what string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalid("%s: %v", what, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" "+fe.Tag())
	}
	return invalid("%s: %s", what, strings.Join(fields, ", "))
}

func checkWeights(w *match.WeightMap) error {
	if w == nil {
		return nil
	}
	if err := validate.Struct(w); err != nil {
		return validationError("weights", err)
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// preparePosting flattens HTML in the free-text fields and folds the work
// mode before the posting is validated.
func preparePosting(p job.Posting) (job.Posting, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Company = strings.TrimSpace(p.Company)
	p.Description = textproc.PlainText(p.Description)
	if len(p.Requirements) > 0 {
		reqs := make([]string, 0, len(p.Requirements))
		for _, r := range p.Requirements {
			if r = textproc.PlainText(r); r != "" {
				reqs = append(reqs, r)
			}
		}
		p.Requirements = reqs
	}
	p.WorkMode = p.WorkMode.Normalize()
	if err := validate.Struct(p); err != nil {
		return job.Posting{}, validationError("job", err)
	}
	return p, nil
}

func prepareProfile(p user.Profile) (user.Profile, error) {
	if len(p.PreferredWorkModes) > 0 {
		modes := make([]job.WorkMode, len(p.PreferredWorkModes))
		for i, m := range p.PreferredWorkModes {
			modes[i] = m.Normalize()
		}
		p.PreferredWorkModes = modes
	}
	if err := validate.Struct(p); err != nil {
		return user.Profile{}, validationError("profile", err)
	}
	return p, nil
}

func checkUserSkills(skills []skill.UserSkill) error {
	in := struct {
		Skills []skill.UserSkill `validate:"dive"`
	}{Skills: skills}
	if err := validate.Struct(in); err != nil {
		return validationError("skills", err)
	}
	return nil
}
