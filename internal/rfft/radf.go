package rfft

// The radfN codelets implement the forward real-to-halfcomplex
// butterfly for radix N. cc is addressed with the l1-major layout
// ([ido][l1][N]) and ch with the N-major layout ([ido][N][l1]), wa
// holds this stage's twiddles as (cos, sin) pairs addressed as
// wa[x*(ido-1)+i-2] and wa[x*(ido-1)+i-1] for twiddle slot x=0..N-2
// and even ido position i=2,4,...

func radf2(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 2

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+cdim*c)] = v }

	for k := 0; k < l1; k++ {
		a, b := pm(CC(0, k, 0), CC(0, k, 1))
		CHset(0, 0, k, a)
		CHset(ido-1, 1, k, b)
	}

	if ido%2 == 0 {
		for k := 0; k < l1; k++ {
			CHset(0, 1, k, -CC(ido-1, k, 1))
			CHset(ido-1, 0, k, CC(ido-1, k, 0))
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			tr2, ti2 := mulpm(wa[i-2], wa[i-1], CC(i-1, k, 1), CC(i, k, 1))

			a, b := pm(CC(i-1, k, 0), tr2)
			CHset(i-1, 0, k, a)
			CHset(ic-1, 1, k, b)

			c, d := pm(ti2, CC(i, k, 0))
			CHset(i, 0, k, c)
			CHset(ic, 1, k, d)
		}
	}
}

func radf3(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 3
	const taur = -0.5
	const taui = 0.86602540378443864676

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+cdim*c)] = v }

	for k := 0; k < l1; k++ {
		cr2 := CC(0, k, 1) + CC(0, k, 2)
		CHset(0, 0, k, CC(0, k, 0)+cr2)
		CHset(0, 2, k, taui*(CC(0, k, 2)-CC(0, k, 1)))
		CHset(ido-1, 1, k, CC(0, k, 0)+taur*cr2)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			dr2, di2 := mulpm(wa[i-2], wa[i-1], CC(i-1, k, 1), CC(i, k, 1))
			dr3, di3 := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], CC(i-1, k, 2), CC(i, k, 2))

			cr2 := dr2 + dr3
			ci2 := di2 + di3
			CHset(i-1, 0, k, CC(i-1, k, 0)+cr2)
			CHset(i, 0, k, CC(i, k, 0)+ci2)

			tr2 := CC(i-1, k, 0) + taur*cr2
			ti2 := CC(i, k, 0) + taur*ci2
			tr3 := taui * (di2 - di3)
			ti3 := taui * (dr3 - dr2)

			a, b := pm(tr2, tr3)
			CHset(i-1, 2, k, a)
			CHset(ic-1, 1, k, b)

			c, d := pm(ti3, ti2)
			CHset(i, 2, k, c)
			CHset(ic, 1, k, d)
		}
	}
}

func radf4(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 4
	const hsqt2 = 0.70710678118654752440

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+cdim*c)] = v }

	for k := 0; k < l1; k++ {
		tr1, ch02 := pm(CC(0, k, 3), CC(0, k, 1))
		tr2, ch11 := pm(CC(0, k, 0), CC(0, k, 2))
		CHset(0, 2, k, ch02)
		CHset(ido-1, 1, k, ch11)

		a, b := pm(tr2, tr1)
		CHset(0, 0, k, a)
		CHset(ido-1, 3, k, b)
	}

	if ido%2 == 0 {
		for k := 0; k < l1; k++ {
			ti1 := -hsqt2 * (CC(ido-1, k, 1) + CC(ido-1, k, 3))
			tr1 := hsqt2 * (CC(ido-1, k, 1) - CC(ido-1, k, 3))

			a, b := pm(CC(ido-1, k, 0), tr1)
			CHset(ido-1, 0, k, a)
			CHset(ido-1, 2, k, b)

			c, d := pm(ti1, CC(ido-1, k, 2))
			CHset(0, 3, k, c)
			CHset(0, 1, k, d)
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			cr2, ci2 := mulpm(wa[i-2], wa[i-1], CC(i-1, k, 1), CC(i, k, 1))
			cr3, ci3 := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], CC(i-1, k, 2), CC(i, k, 2))
			cr4, ci4 := mulpm(wa[2*(ido-1)+i-2], wa[2*(ido-1)+i-1], CC(i-1, k, 3), CC(i, k, 3))

			tr1, tr4 := pm(cr4, cr2)
			ti1, ti4 := pm(ci2, ci4)
			tr2, tr3 := pm(CC(i-1, k, 0), cr3)
			ti2, ti3 := pm(CC(i, k, 0), ci3)

			a, b := pm(tr2, tr1)
			CHset(i-1, 0, k, a)
			CHset(ic-1, 3, k, b)

			c, d := pm(ti1, ti2)
			CHset(i, 0, k, c)
			CHset(ic, 3, k, d)

			e, f := pm(tr3, ti4)
			CHset(i-1, 2, k, e)
			CHset(ic-1, 1, k, f)

			g, h := pm(tr4, ti3)
			CHset(i, 2, k, g)
			CHset(ic, 1, k, h)
		}
	}
}

func radf5(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 5
	const tr11 = 0.3090169943749474241
	const ti11 = 0.95105651629515357212
	const tr12 = -0.8090169943749474241
	const ti12 = 0.58778525229247312917

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+cdim*c)] = v }

	for k := 0; k < l1; k++ {
		cr2, ci5 := pm(CC(0, k, 4), CC(0, k, 1))
		cr3, ci4 := pm(CC(0, k, 3), CC(0, k, 2))

		CHset(0, 0, k, CC(0, k, 0)+cr2+cr3)
		CHset(ido-1, 1, k, CC(0, k, 0)+tr11*cr2+tr12*cr3)
		CHset(0, 2, k, ti11*ci5+ti12*ci4)
		CHset(ido-1, 3, k, CC(0, k, 0)+tr12*cr2+tr11*cr3)
		CHset(0, 4, k, ti12*ci5-ti11*ci4)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			dr2, di2 := mulpm(wa[i-2], wa[i-1], CC(i-1, k, 1), CC(i, k, 1))
			dr3, di3 := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], CC(i-1, k, 2), CC(i, k, 2))
			dr4, di4 := mulpm(wa[2*(ido-1)+i-2], wa[2*(ido-1)+i-1], CC(i-1, k, 3), CC(i, k, 3))
			dr5, di5 := mulpm(wa[3*(ido-1)+i-2], wa[3*(ido-1)+i-1], CC(i-1, k, 4), CC(i, k, 4))

			cr2, ci5 := pm(dr5, dr2)
			ci2, cr5 := pm(di2, di5)
			cr3, ci4 := pm(dr4, dr3)
			ci3, cr4 := pm(di3, di4)

			CHset(i-1, 0, k, CC(i-1, k, 0)+cr2+cr3)
			CHset(i, 0, k, CC(i, k, 0)+ci2+ci3)

			tr2 := CC(i-1, k, 0) + tr11*cr2 + tr12*cr3
			ti2 := CC(i, k, 0) + tr11*ci2 + tr12*ci3
			tr3 := CC(i-1, k, 0) + tr12*cr2 + tr11*cr3
			ti3 := CC(i, k, 0) + tr12*ci2 + tr11*ci3

			tr5, tr4 := mulpm(cr5, cr4, ti11, ti12)
			ti5, ti4 := mulpm(ci5, ci4, ti11, ti12)

			a, b := pm(tr2, tr5)
			CHset(i-1, 2, k, a)
			CHset(ic-1, 1, k, b)

			c, d := pm(ti5, ti2)
			CHset(i, 2, k, c)
			CHset(ic, 1, k, d)

			e, f := pm(tr3, tr4)
			CHset(i-1, 4, k, e)
			CHset(ic-1, 3, k, f)

			g, h := pm(ti4, ti3)
			CHset(i, 4, k, g)
			CHset(ic, 3, k, h)
		}
	}
}
