package eval

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Weights of the composite evaluation terms, each term is a mover-minus-waiting
// differential (mobility is the mover's move count)
type Weights struct {
	Corner   Score `yaml:"corner" json:"corner"`
	Mobility Score `yaml:"mobility" json:"mobility"`
	Material Score `yaml:"material" json:"material"`
	Frontier Score `yaml:"frontier" json:"frontier"`
}

// Weighted sum of corners, mobility, material and frontier
type Composite struct {
	bounded
	Weights Weights
}

func NewComposite(weights Weights) Composite {
	return Composite{Weights: weights}
}

func (c Composite) Evaluate(board *othello.Board, moves othello.PieceSet) Score {
	if score, ok := terminal(board); ok {
		return score
	}

	w := c.Weights
	score := int64(w.Corner)*int64(corners(board)) +
		int64(w.Mobility)*int64(mobility(moves)) +
		int64(w.Material)*int64(material(board)) +
		int64(w.Frontier)*int64(frontier(board))

	// +-MaxScore is reserved for finished games
	score = min(max(score, -int64(MaxScore-1)), int64(MaxScore-1))
	return sign(board) * Score(score)
}

// No term exceeds 64 in absolute value, so weights whose absolute sum stays below
// MaxScore/64 can't reach a finished game's score
func (w Weights) Validate() error {
	var sum int64
	for _, v := range []Score{w.Corner, w.Mobility, w.Material, w.Frontier} {
		sum += max(int64(v), -int64(v))
	}
	if sum*64 >= int64(MaxScore) {
		return fmt.Errorf("%w: absolute sum %d must stay below %d", ErrWeightsOverflow, sum, int64(MaxScore)/64)
	}
	return nil
}

// LoadWeights reads weights from yaml, missing keys keep their DefaultWeights value
func LoadWeights(r io.Reader) (Weights, error) {
	weights := DefaultWeights
	if err := yaml.NewDecoder(r).Decode(&weights); err != nil && err != io.EOF {
		return Weights{}, fmt.Errorf("decoding weights: %w", err)
	}
	if err := weights.Validate(); err != nil {
		return Weights{}, err
	}
	return weights, nil
}

func LoadWeightsFile(path string) (Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return Weights{}, err
	}
	defer f.Close()
	return LoadWeights(f)
}

func (w Weights) String() string {
	out, _ := yaml.Marshal(w)
	return string(out)
}
