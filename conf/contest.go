package conf

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Contest holds every per-contest knob that the original deployment kept as
// mutable package globals. It is loaded once at startup and passed around as
// an immutable value.
type Contest struct {
	Title         string    `toml:"title" validate:"required"`
	Deadline      time.Time `toml:"deadline" validate:"required"`
	ShowPrivate   bool      `toml:"show_private"` // operator override: display the contest as closed
	DailyLimit    int       `toml:"daily_limit" validate:"gte=0"`
	MaxSelectable int       `toml:"max_selectable" validate:"gte=1"`
	OrderBy       string    `toml:"order_by" validate:"oneof=asc desc"`

	AnswerKeyPath    string `toml:"answer_key_path" validate:"required"`
	IDColumn         string `toml:"id_column" validate:"required"`
	ValueColumn      string `toml:"value_column" validate:"required"`
	PublicFlagColumn string `toml:"public_flag_column" validate:"required"`

	UploadDir         string   `toml:"upload_dir"`
	S3Bucket          string   `toml:"s3_bucket"`
	S3Region          string   `toml:"s3_region"`
	AllowedExtensions []string `toml:"allowed_extensions"`

	ContentDir    string   `toml:"content_dir"`
	Pages         []string `toml:"pages"`
	DiscussionURL string   `toml:"discussion_url"`
}

// Ascending reports whether lower scores rank first. MSE is an error metric,
// so ascending is the default.
func (c Contest) Ascending() bool {
	return c.OrderBy != "desc"
}

func ReadContestConfig(path string) (Contest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Contest{}, fmt.Errorf("failed to read contest config: %w", err)
	}

	x := struct {
		Contest Contest `toml:"contest"`
	}{
		Contest: Contest{
			DailyLimit:        3,
			MaxSelectable:     1,
			OrderBy:           "asc",
			IDColumn:          "row_id",
			ValueColumn:       "prediction",
			PublicFlagColumn:  "public",
			UploadDir:         "submissions",
			AllowedExtensions: []string{"csv", "txt", "gz"},
			Pages:             []string{"description", "evaluation", "rules", "prizes"},
		},
	}

	err = toml.Unmarshal(data, &x)
	if err != nil {
		return Contest{}, fmt.Errorf("failed to unmarshal contest config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(x.Contest); err != nil {
		return Contest{}, fmt.Errorf("invalid contest config: %w", err)
	}

	return x.Contest, nil
}
