package terrestrial_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/sidereal"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

// PipelineSuite checks properties of the full GCRS→ITRS composition.
type PipelineSuite struct {
	suite.Suite
	tt, ut1 epoch.Date
	pole    polar.Motion
}

func (s *PipelineSuite) SetupTest() {
	s.tt = epoch.FromMJD(58849.5)
	s.ut1 = epoch.New(epoch.MJDZero, 58849.5-69.18/epoch.SecondsPerDay)
	s.pole = polar.Motion{Xp: 0.0769 * rotation.ArcsecToRad, Yp: 0.2934 * rotation.ArcsecToRad}
}

// TestCIOAndEquinoxAgree: both factorings give the same matrix per model.
func (s *PipelineSuite) TestCIOAndEquinoxAgree() {
	for _, m := range nutation.Models {
		cio, err := terrestrial.Matrix(s.tt, s.ut1, s.pole,
			terrestrial.WithModel(m), terrestrial.WithMethod(terrestrial.CIOBased))
		require.NoError(s.T(), err)
		eqx, err := terrestrial.Matrix(s.tt, s.ut1, s.pole,
			terrestrial.WithModel(m), terrestrial.WithMethod(terrestrial.EquinoxBased))
		require.NoError(s.T(), err)

		require.Lessf(s.T(), rotation.Distance(cio, eqx), 1e-12, "model %v", m)
	}
}

// TestOrthonormal: every pipeline output is a proper rotation.
func (s *PipelineSuite) TestOrthonormal() {
	for _, m := range nutation.Models {
		for _, meth := range terrestrial.Methods {
			r, err := terrestrial.Matrix(s.tt, s.ut1, s.pole,
				terrestrial.WithModel(m), terrestrial.WithMethod(meth))
			require.NoError(s.T(), err)
			require.NoErrorf(s.T(), rotation.Validate(r, 1e-12), "%v/%v", m, meth)
		}
	}
}

// TestDegenerate: with no precession-nutation and no polar motion the
// pipeline reduces to the Earth's spin alone.
func (s *PipelineSuite) TestDegenerate() {
	era := sidereal.Era00(s.ut1)
	got := terrestrial.C2tcio(bpn.C2ixys(0, 0, 0), era, polar.Pom00(0, 0, 0))
	require.Equal(s.T(), rotation.Identity().Rz(era), got)

	gst := 1.25
	got = terrestrial.C2teqx(rotation.Identity(), gst, rotation.Identity())
	require.Equal(s.T(), rotation.Identity().Rz(gst), got)
}

// TestModelsDifferSlightly: 2000A and 2000B disagree, but by under 1 mas.
func (s *PipelineSuite) TestModelsDifferSlightly() {
	a, err := terrestrial.Matrix(s.tt, s.ut1, s.pole, terrestrial.WithModel(nutation.IAU2000A))
	require.NoError(s.T(), err)
	b, err := terrestrial.Matrix(s.tt, s.ut1, s.pole, terrestrial.WithModel(nutation.IAU2000B))
	require.NoError(s.T(), err)

	d := rotation.Distance(a, b)
	require.Greater(s.T(), d, 0.0)
	require.Less(s.T(), d, 2*rotation.MilliarcsecToRad)
}

// TestConcurrentUse: many goroutines reproduce the serial result.
func (s *PipelineSuite) TestConcurrentUse() {
	want, err := terrestrial.Matrix(s.tt, s.ut1, s.pole)
	require.NoError(s.T(), err)

	const workers = 16
	results := make([]rotation.Matrix, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = terrestrial.Matrix(s.tt, s.ut1, s.pole)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(s.T(), errs[i])
		require.Equal(s.T(), want, results[i])
	}
}

// TestUnknownSelections: invalid model or method are reported, not guessed.
func (s *PipelineSuite) TestUnknownSelections() {
	_, err := terrestrial.Matrix(s.tt, s.ut1, s.pole, terrestrial.WithModel(nutation.Model(9)))
	require.ErrorIs(s.T(), err, nutation.ErrUnknownModel)

	_, err = terrestrial.Matrix(s.tt, s.ut1, s.pole, terrestrial.WithMethod(terrestrial.Method(9)))
	require.ErrorIs(s.T(), err, terrestrial.ErrUnknownMethod)
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}
