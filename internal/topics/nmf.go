//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/dtm"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

// NMF - multiplicative-update factorization minimizing ||V - WH|| with W, H >= 0.
// The "nndsvd" seeding is fully deterministic: two fits on the same input produce the same factors.
type NMF struct {
	cfg Config
}

func NewNMF(cfg Config) *NMF {
	return &NMF{cfg: fillconfig(cfg, vv.MODELNMF)}
}

func (n *NMF) Fit(tm *dtm.TermMatrix) (*Model, error) {
	if err := validatefit(tm, n.cfg.Topics); err != nil {
		return nil, err
	}

	k := n.cfg.Topics
	v := tm.M.ToDense() // docs x terms

	var w, h *mat.Dense
	switch n.cfg.Init {
	case vv.NMFINITNNDSVD:
		ww, hh, err := nndsvdinit(v, k)
		if err != nil {
			return nil, err
		}
		w, h = ww, hh
	case vv.NMFINITRANDOM:
		w, h = randominit(v, k, n.cfg.Seed)
	default:
		return nil, &ConfigurationError{Topics: k, Vocabulary: tm.Terms(),
			Reason: fmt.Sprintf("unknown init strategy '%s'", n.cfg.Init)}
	}

	multiplicativeupdates(v, w, h, n.cfg.Iterations)

	return &Model{TopicTerm: h, DocTopic: w}, nil
}

// nndsvdinit - non-negative double singular value decomposition seeding, zeros filled
// with the matrix mean so multiplicative updates cannot lock entries at zero
func nndsvdinit(v *mat.Dense, k int) (*mat.Dense, *mat.Dense, error) {
	docs, terms := v.Dims()
	if k > docs {
		return nil, nil, &ConfigurationError{Topics: k, Vocabulary: terms,
			Reason: "nndsvd seeding needs a topic count no larger than the document count"}
	}

	var svd mat.SVD
	if ok := svd.Factorize(v, mat.SVDThin); !ok {
		return nil, nil, errors.New("nndsvdinit() SVD factorization did not converge")
	}

	var u, vm mat.Dense
	svd.UTo(&u)  // docs x p
	svd.VTo(&vm) // terms x p
	s := svd.Values(nil)

	w := mat.NewDense(docs, k, nil)
	h := mat.NewDense(k, terms, nil)

	// the leading singular pair of a non-negative matrix can be taken non-negative
	f0 := math.Sqrt(s[0])
	for i := 0; i < docs; i++ {
		w.Set(i, 0, f0*math.Abs(u.At(i, 0)))
	}
	for j := 0; j < terms; j++ {
		h.Set(0, j, f0*math.Abs(vm.At(j, 0)))
	}

	for c := 1; c < k; c++ {
		xp, xn := posnegparts(&u, c)
		yp, yn := posnegparts(&vm, c)

		xpn, xnn := vecnorm(xp), vecnorm(xn)
		ypn, ynn := vecnorm(yp), vecnorm(yn)

		mp := xpn * ypn
		mn := xnn * ynn

		var x, y []float64
		var sigma float64
		if mp >= mn {
			x, y, sigma = xp, yp, mp
			scalevec(x, xpn)
			scalevec(y, ypn)
		} else {
			x, y, sigma = xn, yn, mn
			scalevec(x, xnn)
			scalevec(y, ynn)
		}

		f := math.Sqrt(s[c] * sigma)
		for i := 0; i < docs; i++ {
			w.Set(i, c, f*x[i])
		}
		for j := 0; j < terms; j++ {
			h.Set(c, j, f*y[j])
		}
	}

	mean := mat.Sum(v) / float64(docs*terms)
	fillzeros(w, mean)
	fillzeros(h, mean)

	return w, h, nil
}

// randominit - seeded uniform factors scaled to the magnitude of the input
func randominit(v *mat.Dense, k int, seed uint64) (*mat.Dense, *mat.Dense) {
	docs, terms := v.Dims()
	rnd := rand.New(rand.NewSource(seed))

	scale := math.Sqrt(mat.Sum(v) / float64(docs*terms) / float64(k))
	w := mat.NewDense(docs, k, nil)
	h := mat.NewDense(k, terms, nil)
	for i := 0; i < docs; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, scale*rnd.Float64())
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < terms; j++ {
			h.Set(i, j, scale*rnd.Float64())
		}
	}
	return w, h
}

// multiplicativeupdates - Lee-Seung update rules; non-negativity is preserved at every step
func multiplicativeupdates(v, w, h *mat.Dense, iterations int) {
	const EPS = 1e-9

	docs, terms := v.Dims()
	_, k := w.Dims()

	var wtv, wtw, wtwh mat.Dense
	var vht, hht, whht mat.Dense

	for it := 0; it < iterations; it++ {
		// H <- H .* (WtV) ./ (WtW H)
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		for i := 0; i < k; i++ {
			for j := 0; j < terms; j++ {
				h.Set(i, j, h.At(i, j)*wtv.At(i, j)/(wtwh.At(i, j)+EPS))
			}
		}

		// W <- W .* (VHt) ./ (W HHt)
		vht.Mul(v, h.T())
		hht.Mul(h, h.T())
		whht.Mul(w, &hht)
		for i := 0; i < docs; i++ {
			for j := 0; j < k; j++ {
				w.Set(i, j, w.At(i, j)*vht.At(i, j)/(whht.At(i, j)+EPS))
			}
		}
	}
}

func posnegparts(d *mat.Dense, col int) ([]float64, []float64) {
	rows, _ := d.Dims()
	pos := make([]float64, rows)
	neg := make([]float64, rows)
	for i := 0; i < rows; i++ {
		x := d.At(i, col)
		if x >= 0 {
			pos[i] = x
		} else {
			neg[i] = -x
		}
	}
	return pos, neg
}

func vecnorm(x []float64) float64 {
	ss := 0.0
	for _, v := range x {
		ss += v * v
	}
	return math.Sqrt(ss)
}

func scalevec(x []float64, norm float64) {
	if norm == 0 {
		return
	}
	for i := range x {
		x[i] /= norm
	}
}

func fillzeros(d *mat.Dense, fill float64) {
	rows, cols := d.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if d.At(i, j) == 0 {
				d.Set(i, j, fill)
			}
		}
	}
}
