package rfft

// The radbN codelets are the inverse of the matching radfN: cc is
// addressed with the N-major layout and ch with the l1-major layout.

func radb2(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 2

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+cdim*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+l1*c)] = v }

	for k := 0; k < l1; k++ {
		a, b := pm(CC(0, 0, k), CC(ido-1, 1, k))
		CHset(0, k, 0, a)
		CHset(0, k, 1, b)
	}

	if ido%2 == 0 {
		for k := 0; k < l1; k++ {
			CHset(ido-1, k, 0, 2*CC(ido-1, 0, k))
			CHset(ido-1, k, 1, -2*CC(0, 1, k))
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			ch0, tr2 := pm(CC(i-1, 0, k), CC(ic-1, 1, k))
			ti2, ch1 := pm(CC(i, 0, k), CC(ic, 1, k))
			CHset(i-1, k, 0, ch0)
			CHset(i, k, 0, ch1)

			a, b := mulpm(wa[i-2], wa[i-1], ti2, tr2)
			CHset(i, k, 1, a)
			CHset(i-1, k, 1, b)
		}
	}
}

func radb3(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 3
	const taur = -0.5
	const taui = 0.86602540378443864676

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+cdim*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+l1*c)] = v }

	for k := 0; k < l1; k++ {
		tr2 := 2 * CC(ido-1, 1, k)
		cr2 := CC(0, 0, k) + taur*tr2
		CHset(0, k, 0, CC(0, 0, k)+tr2)

		ci3 := 2 * taui * CC(0, 2, k)
		a, b := pm(cr2, ci3)
		CHset(0, k, 2, a)
		CHset(0, k, 1, b)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			tr2 := CC(i-1, 2, k) + CC(ic-1, 1, k)
			ti2 := CC(i, 2, k) - CC(ic, 1, k)
			cr2 := CC(i-1, 0, k) + taur*tr2
			ci2 := CC(i, 0, k) + taur*ti2
			CHset(i-1, k, 0, CC(i-1, 0, k)+tr2)
			CHset(i, k, 0, CC(i, 0, k)+ti2)

			cr3 := taui * (CC(i-1, 2, k) - CC(ic-1, 1, k))
			ci3 := taui * (CC(i, 2, k) + CC(ic, 1, k))

			dr3, dr2 := pm(cr2, ci3)
			di2, di3 := pm(ci2, cr3)

			a, b := mulpm(wa[i-2], wa[i-1], di2, dr2)
			CHset(i, k, 1, a)
			CHset(i-1, k, 1, b)

			c, d := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], di3, dr3)
			CHset(i, k, 2, c)
			CHset(i-1, k, 2, d)
		}
	}
}

func radb4(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 4
	const sqrt2 = 1.41421356237309504880

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+cdim*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+l1*c)] = v }

	for k := 0; k < l1; k++ {
		tr2, tr1 := pm(CC(0, 0, k), CC(ido-1, 3, k))
		tr3 := 2 * CC(ido-1, 1, k)
		tr4 := 2 * CC(0, 2, k)

		a, b := pm(tr2, tr3)
		CHset(0, k, 0, a)
		CHset(0, k, 2, b)

		c, d := pm(tr1, tr4)
		CHset(0, k, 3, c)
		CHset(0, k, 1, d)
	}

	if ido%2 == 0 {
		for k := 0; k < l1; k++ {
			ti1, ti2 := pm(CC(0, 3, k), CC(0, 1, k))
			tr2, tr1 := pm(CC(ido-1, 0, k), CC(ido-1, 2, k))

			CHset(ido-1, k, 0, tr2+tr2)
			CHset(ido-1, k, 1, sqrt2*(tr1-ti1))
			CHset(ido-1, k, 2, ti2+ti2)
			CHset(ido-1, k, 3, -sqrt2*(tr1+ti1))
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			tr2, tr1 := pm(CC(i-1, 0, k), CC(ic-1, 3, k))
			ti1, ti2 := pm(CC(i, 0, k), CC(ic, 3, k))
			tr4, ti3 := pm(CC(i, 2, k), CC(ic, 1, k))
			tr3, ti4 := pm(CC(i-1, 2, k), CC(ic-1, 1, k))

			ch0, cr3 := pm(tr2, tr3)
			ch1, ci3 := pm(ti2, ti3)
			CHset(i-1, k, 0, ch0)
			CHset(i, k, 0, ch1)

			cr4, cr2 := pm(tr1, tr4)
			ci2, ci4 := pm(ti1, ti4)

			a, b := mulpm(wa[i-2], wa[i-1], ci2, cr2)
			CHset(i, k, 1, a)
			CHset(i-1, k, 1, b)

			c, d := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], ci3, cr3)
			CHset(i, k, 2, c)
			CHset(i-1, k, 2, d)

			e, f := mulpm(wa[2*(ido-1)+i-2], wa[2*(ido-1)+i-1], ci4, cr4)
			CHset(i, k, 3, e)
			CHset(i-1, k, 3, f)
		}
	}
}

func radb5(ido, l1 int, cc, ch, wa []float64) {
	const cdim = 5
	const tr11 = 0.3090169943749474241
	const ti11 = 0.95105651629515357212
	const tr12 = -0.8090169943749474241
	const ti12 = 0.58778525229247312917

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+cdim*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+l1*c)] = v }

	for k := 0; k < l1; k++ {
		ti5 := CC(0, 2, k) + CC(0, 2, k)
		ti4 := CC(0, 4, k) + CC(0, 4, k)
		tr2 := CC(ido-1, 1, k) + CC(ido-1, 1, k)
		tr3 := CC(ido-1, 3, k) + CC(ido-1, 3, k)

		CHset(0, k, 0, CC(0, 0, k)+tr2+tr3)
		cr2 := CC(0, 0, k) + tr11*tr2 + tr12*tr3
		cr3 := CC(0, 0, k) + tr12*tr2 + tr11*tr3

		ci5, ci4 := mulpm(ti5, ti4, ti11, ti12)

		a, b := pm(cr2, ci5)
		CHset(0, k, 4, a)
		CHset(0, k, 1, b)

		c, d := pm(cr3, ci4)
		CHset(0, k, 3, c)
		CHset(0, k, 2, d)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i

			tr2, tr5 := pm(CC(i-1, 2, k), CC(ic-1, 1, k))
			ti5, ti2 := pm(CC(i, 2, k), CC(ic, 1, k))
			tr3, tr4 := pm(CC(i-1, 4, k), CC(ic-1, 3, k))
			ti4, ti3 := pm(CC(i, 4, k), CC(ic, 3, k))

			CHset(i-1, k, 0, CC(i-1, 0, k)+tr2+tr3)
			CHset(i, k, 0, CC(i, 0, k)+ti2+ti3)

			cr2 := CC(i-1, 0, k) + tr11*tr2 + tr12*tr3
			ci2 := CC(i, 0, k) + tr11*ti2 + tr12*ti3
			cr3 := CC(i-1, 0, k) + tr12*tr2 + tr11*tr3
			ci3 := CC(i, 0, k) + tr12*ti2 + tr11*ti3

			cr5, cr4 := mulpm(tr5, tr4, ti11, ti12)
			ci5, ci4 := mulpm(ti5, ti4, ti11, ti12)

			dr4, dr3 := pm(cr3, ci4)
			di3, di4 := pm(ci3, cr4)
			dr5, dr2 := pm(cr2, ci5)
			di2, di5 := pm(ci2, cr5)

			a, b := mulpm(wa[i-2], wa[i-1], di2, dr2)
			CHset(i, k, 1, a)
			CHset(i-1, k, 1, b)

			c, d := mulpm(wa[(ido-1)+i-2], wa[(ido-1)+i-1], di3, dr3)
			CHset(i, k, 2, c)
			CHset(i-1, k, 2, d)

			e, f := mulpm(wa[2*(ido-1)+i-2], wa[2*(ido-1)+i-1], di4, dr4)
			CHset(i, k, 3, e)
			CHset(i-1, k, 3, f)

			g, h := mulpm(wa[3*(ido-1)+i-2], wa[3*(ido-1)+i-1], di5, dr5)
			CHset(i, k, 4, g)
			CHset(i-1, k, 4, h)
		}
	}
}
