package analysis

import (
	"fmt"
	"strings"

	"equilib/internal/potential"
)

// BranchPoint holds the equilibria found for one parameter value.
type BranchPoint struct {
	Param  float64
	Points []Point
}

// Branches sweeps one parameter of a configurable field and re-runs the
// equilibrium search at each value. Useful for watching wells merge or
// split as the potential deforms (a pitchfork in the double well as B
// crosses zero, for example). The parameter is restored afterwards.
func Branches(
	field potential.Field,
	finder *Finder,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	seeds []float64,
) ([]BranchPoint, error) {
	tunable, ok := field.(potential.Configurable)
	if !ok {
		return nil, fmt.Errorf("potential %s has no adjustable parameters", field.Name())
	}
	original, ok := tunable.GetParams()[paramName]
	if !ok {
		return nil, fmt.Errorf("potential %s has no param %q", field.Name(), paramName)
	}
	defer tunable.SetParam(paramName, original)

	if paramSteps < 2 {
		paramSteps = 2
	}
	step := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]BranchPoint, 0, paramSteps)
	for i := 0; i < paramSteps; i++ {
		p := paramMin + float64(i)*step
		if err := tunable.SetParam(paramName, p); err != nil {
			return nil, err
		}
		results = append(results, BranchPoint{
			Param:  p,
			Points: finder.FindEquilibria(field, seeds),
		})
	}
	return results, nil
}

// BranchesToASCII renders a branch diagram: parameter on the horizontal
// axis, equilibrium position on the vertical. Stable branches draw as
// '●', unstable as '○', neutral as '·'.
func BranchesToASCII(data []BranchPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minPos, maxPos float64
	found := false
	for _, bp := range data {
		for _, pt := range bp.Points {
			if !found {
				minPos, maxPos = pt.Position, pt.Position
				found = true
				continue
			}
			if pt.Position < minPos {
				minPos = pt.Position
			}
			if pt.Position > maxPos {
				maxPos = pt.Position
			}
		}
	}
	if !found {
		return ""
	}
	if maxPos == minPos {
		maxPos = minPos + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, bp := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, pt := range bp.Points {
			row := height - 1 - int((pt.Position-minPos)/(maxPos-minPos)*float64(height-1))
			if row < 0 || row >= height {
				continue
			}
			switch pt.Stability {
			case Stable:
				canvas[row][col] = '●'
			case Unstable:
				canvas[row][col] = '○'
			default:
				canvas[row][col] = '·'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
