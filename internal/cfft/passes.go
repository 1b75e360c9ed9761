package cfft

// Each passN implements one mixed-radix butterfly stage operating on
// cc (input, shaped [ido][p][l1]) and writing ch (output, shaped
// [ido][l1][p]). wa holds the twiddle factors for this factor's
// stage, addressed as wa[x*(ido-1)+i-1] for twiddle slot x=0..p-2 and
// ido position i=1..ido-1.

func pass2(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 2

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	for k := 0; k < l1; k++ {
		a, b := pmc(ccAt(0, 0, k), ccAt(0, 1, k))
		chSet(0, k, 0, a)
		chSet(0, k, 1, b)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			a, b := pmc(ccAt(i, 0, k), ccAt(i, 1, k))
			chSet(i, k, 0, a)
			chSet(i, k, 1, specialMul(bwd, b, wa[i-1]))
		}
	}
}

func pass3(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 3
	const tw1r = -0.5

	tw1i := 0.86602540378443864676
	if !bwd {
		tw1i = -tw1i
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	step := func(idx, k int) {
		t0 := ccAt(idx, 0, k)
		t1, t2 := pmc(ccAt(idx, 1, k), ccAt(idx, 2, k))
		chSet(idx, k, 0, t0+t1)

		ca := t0 + complex(tw1r, 0)*t1
		cb := rot90(complex(tw1i, 0) * t2)
		da, db := pmc(ca, cb)

		if idx == 0 {
			chSet(0, k, 1, da)
			chSet(0, k, 2, db)
			return
		}

		chSet(idx, k, 1, specialMul(bwd, da, wa[0*(ido-1)+idx-1]))
		chSet(idx, k, 2, specialMul(bwd, db, wa[1*(ido-1)+idx-1]))
	}

	for k := 0; k < l1; k++ {
		step(0, k)
	}
	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			step(i, k)
		}
	}
}

func pass4(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 4

	rot := rotm90
	if bwd {
		rot = rot90
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	for k := 0; k < l1; k++ {
		t2, t1 := pmc(ccAt(0, 0, k), ccAt(0, 2, k))
		t3, t4 := pmc(ccAt(0, 1, k), ccAt(0, 3, k))
		t4 = rot(t4)

		ch0, ch2 := pmc(t2, t3)
		ch1, ch3 := pmc(t1, t4)
		chSet(0, k, 0, ch0)
		chSet(0, k, 2, ch2)
		chSet(0, k, 1, ch1)
		chSet(0, k, 3, ch3)
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			t2, t1 := pmc(ccAt(i, 0, k), ccAt(i, 2, k))
			t3, t4 := pmc(ccAt(i, 1, k), ccAt(i, 3, k))
			t4 = rot(t4)

			ch0, c3 := pmc(t2, t3)
			c2, c4 := pmc(t1, t4)

			chSet(i, k, 0, ch0)
			chSet(i, k, 1, specialMul(bwd, c2, wa[0*(ido-1)+i-1]))
			chSet(i, k, 2, specialMul(bwd, c3, wa[1*(ido-1)+i-1]))
			chSet(i, k, 3, specialMul(bwd, c4, wa[2*(ido-1)+i-1]))
		}
	}
}

func pass5(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 5
	const tw1r = 0.3090169943749474241
	const tw2r = -0.8090169943749474241

	tw1i := 0.95105651629515357212
	tw2i := 0.58778525229247312917
	if !bwd {
		tw1i, tw2i = -tw1i, -tw2i
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	step := func(idx, k int) {
		t0 := ccAt(idx, 0, k)
		t1, t4 := pmc(ccAt(idx, 1, k), ccAt(idx, 4, k))
		t2, t3 := pmc(ccAt(idx, 2, k), ccAt(idx, 3, k))
		chSet(idx, k, 0, t0+t1+t2)

		part := func(u1, u2 int, twar, twbr, twai, twbi float64) {
			ca := t0 + complex(twar, 0)*t1 + complex(twbr, 0)*t2
			cb := complex(
				-(twai*imag(t4) + twbi*imag(t3)),
				twai*real(t4)+twbi*real(t3),
			)
			da, db := pmc(ca, cb)

			if idx == 0 {
				chSet(0, k, u1, da)
				chSet(0, k, u2, db)
				return
			}

			chSet(idx, k, u1, specialMul(bwd, da, wa[(u1-1)*(ido-1)+idx-1]))
			chSet(idx, k, u2, specialMul(bwd, db, wa[(u2-1)*(ido-1)+idx-1]))
		}

		part(1, 4, tw1r, tw2r, tw1i, tw2i)
		part(2, 3, tw2r, tw1r, tw2i, -tw1i)
	}

	for k := 0; k < l1; k++ {
		step(0, k)
	}
	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			step(i, k)
		}
	}
}

func pass7(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 7
	const tw1r = 0.623489801858733530525
	const tw2r = -0.222520933956314404289
	const tw3r = -0.9009688679024191262361

	tw1i := 0.7818314824680298087084
	tw2i := 0.9749279121818236070181
	tw3i := 0.4338837391175581204758
	if !bwd {
		tw1i, tw2i, tw3i = -tw1i, -tw2i, -tw3i
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	step := func(idx, k int) {
		t1 := ccAt(idx, 0, k)
		t2, t7 := pmc(ccAt(idx, 1, k), ccAt(idx, 6, k))
		t3, t6 := pmc(ccAt(idx, 2, k), ccAt(idx, 5, k))
		t4, t5 := pmc(ccAt(idx, 3, k), ccAt(idx, 4, k))
		chSet(idx, k, 0, t1+t2+t3+t4)

		part := func(u1, u2 int, x1, x2, x3, y1, y2, y3 float64) {
			ca := t1 + complex(x1, 0)*t2 + complex(x2, 0)*t3 + complex(x3, 0)*t4
			cb := complex(
				-(y1*imag(t7) + y2*imag(t6) + y3*imag(t5)),
				y1*real(t7)+y2*real(t6)+y3*real(t5),
			)
			da, db := pmc(ca, cb)

			if idx == 0 {
				chSet(0, k, u1, da)
				chSet(0, k, u2, db)
				return
			}

			chSet(idx, k, u1, specialMul(bwd, da, wa[(u1-1)*(ido-1)+idx-1]))
			chSet(idx, k, u2, specialMul(bwd, db, wa[(u2-1)*(ido-1)+idx-1]))
		}

		part(1, 6, tw1r, tw2r, tw3r, tw1i, tw2i, tw3i)
		part(2, 5, tw2r, tw3r, tw1r, tw2i, -tw3i, -tw1i)
		part(3, 4, tw3r, tw1r, tw2r, tw3i, -tw1i, tw2i)
	}

	for k := 0; k < l1; k++ {
		step(0, k)
	}
	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			step(i, k)
		}
	}
}

func pass11(bwd bool, ido, l1 int, cc, ch, wa []complex128) {
	const p = 11
	const tw1r = 0.8412535328311811688618
	const tw2r = 0.4154150130018864255293
	const tw3r = -0.1423148382732851404438
	const tw4r = -0.6548607339452850640569
	const tw5r = -0.9594929736144973898904

	tw1i := 0.5406408174555975821076
	tw2i := 0.9096319953545183714117
	tw3i := 0.9898214418809327323761
	tw4i := 0.755749574354258283774
	tw5i := 0.2817325568414296977114
	if !bwd {
		tw1i, tw2i, tw3i, tw4i, tw5i = -tw1i, -tw2i, -tw3i, -tw4i, -tw5i
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+p*k)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }

	step := func(idx, k int) {
		t1 := ccAt(idx, 0, k)
		t2, t11 := pmc(ccAt(idx, 1, k), ccAt(idx, 10, k))
		t3, t10 := pmc(ccAt(idx, 2, k), ccAt(idx, 9, k))
		t4, t9 := pmc(ccAt(idx, 3, k), ccAt(idx, 8, k))
		t5, t8 := pmc(ccAt(idx, 4, k), ccAt(idx, 7, k))
		t6, t7 := pmc(ccAt(idx, 5, k), ccAt(idx, 6, k))
		chSet(idx, k, 0, t1+t2+t3+t4+t5+t6)

		part := func(u1, u2 int, x1, x2, x3, x4, x5, y1, y2, y3, y4, y5 float64) {
			ca := t1 + complex(x1, 0)*t2 + complex(x2, 0)*t3 + complex(x3, 0)*t4 +
				complex(x4, 0)*t5 + complex(x5, 0)*t6
			cb := complex(
				-(y1*imag(t11) + y2*imag(t10) + y3*imag(t9) + y4*imag(t8) + y5*imag(t7)),
				y1*real(t11)+y2*real(t10)+y3*real(t9)+y4*real(t8)+y5*real(t7),
			)
			da, db := pmc(ca, cb)

			if idx == 0 {
				chSet(0, k, u1, da)
				chSet(0, k, u2, db)
				return
			}

			chSet(idx, k, u1, specialMul(bwd, da, wa[(u1-1)*(ido-1)+idx-1]))
			chSet(idx, k, u2, specialMul(bwd, db, wa[(u2-1)*(ido-1)+idx-1]))
		}

		part(1, 10, tw1r, tw2r, tw3r, tw4r, tw5r, tw1i, tw2i, tw3i, tw4i, tw5i)
		part(2, 9, tw2r, tw4r, tw5r, tw3r, tw1r, tw2i, tw4i, -tw5i, -tw3i, -tw1i)
		part(3, 8, tw3r, tw5r, tw2r, tw1r, tw4r, tw3i, -tw5i, -tw2i, tw1i, tw4i)
		part(4, 7, tw4r, tw3r, tw1r, tw5r, tw2r, tw4i, -tw3i, tw1i, tw5i, -tw2i)
		part(5, 6, tw5r, tw1r, tw4r, tw2r, tw3r, tw5i, -tw1i, tw4i, -tw2i, tw3i)
	}

	for k := 0; k < l1; k++ {
		step(0, k)
	}
	for k := 0; k < l1; k++ {
		for i := 1; i < ido; i++ {
			step(i, k)
		}
	}
}

// passg is the generic-radix butterfly used for any factor not
// hand-coded above; sizeutil.Factorize only yields such factors as
// primes larger than 11. Unlike the others it writes its result back into cc
// rather than ch; the caller must not swap the active buffer after a
// passg stage. csarr holds the ip primitive-root twiddle factors
// built alongside this factor's table.
func passg(bwd bool, ido, ip, l1 int, cc, ch, wa, csarr []complex128) {
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	wal := make([]complex128, ip)
	wal[0] = 1
	for i := 1; i < ip; i++ {
		if bwd {
			wal[i] = csarr[i]
		} else {
			wal[i] = complex(real(csarr[i]), -imag(csarr[i]))
		}
	}

	ccAt := func(a, b, k int) complex128 { return cc[a+ido*(b+ip*k)] }
	chAt := func(a, k, c int) complex128 { return ch[a+ido*(k+l1*c)] }
	chSet := func(a, k, c int, v complex128) { ch[a+ido*(k+l1*c)] = v }
	cxAt := func(a, k, c int) complex128 { return cc[a+ido*(k+l1*c)] }
	cxSet := func(a, k, c int, v complex128) { cc[a+ido*(k+l1*c)] = v }
	ch2At := func(ik, b int) complex128 { return ch[ik+idl1*b] }
	cx2At := func(ik, b int) complex128 { return cc[ik+idl1*b] }
	cx2Set := func(ik, b int, v complex128) { cc[ik+idl1*b] = v }

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			chSet(i, k, 0, ccAt(i, 0, k))
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			for i := 0; i < ido; i++ {
				a, b := pmc(ccAt(i, j, k), ccAt(i, jc, k))
				chSet(i, k, j, a)
				chSet(i, k, jc, b)
			}
		}
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			tmp := chAt(i, k, 0)
			for j := 1; j < ipph; j++ {
				tmp += chAt(i, k, j)
			}
			cxSet(i, k, 0, tmp)
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		wl, w2l := wal[l], wal[2*l]

		for ik := 0; ik < idl1; ik++ {
			ch0, ch1, ch2 := ch2At(ik, 0), ch2At(ik, 1), ch2At(ik, 2)
			chm1, chm2 := ch2At(ik, ip-1), ch2At(ik, ip-2)

			cxl := complex(
				real(ch0)+real(wl)*real(ch1)+real(w2l)*real(ch2),
				imag(ch0)+real(wl)*imag(ch1)+real(w2l)*imag(ch2),
			)
			cxlc := complex(
				-imag(wl)*imag(chm1)-imag(w2l)*imag(chm2),
				imag(wl)*real(chm1)+imag(w2l)*real(chm2),
			)

			iwal := 2 * l
			for j, jc := 3, ip-3; j < ipph; j, jc = j+1, jc-1 {
				iwal += l
				if iwal >= ip {
					iwal -= ip
				}
				xwal := wal[iwal]

				chj, chjc := ch2At(ik, j), ch2At(ik, jc)
				cxl += complex(real(chj)*real(xwal), imag(chj)*real(xwal))
				cxlc += complex(-imag(chjc)*imag(xwal), real(chjc)*imag(xwal))
			}

			cx2Set(ik, l, cxl)
			cx2Set(ik, lc, cxlc)
		}
	}

	if ido == 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			for ik := 0; ik < idl1; ik++ {
				a, b := pmc(cx2At(ik, j), cx2At(ik, jc))
				cx2Set(ik, j, a)
				cx2Set(ik, jc, b)
			}
		}
		return
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			a, b := pmc(cxAt(0, k, j), cxAt(0, k, jc))
			cxSet(0, k, j, a)
			cxSet(0, k, jc, b)

			for i := 1; i < ido; i++ {
				x1, x2 := pmc(cxAt(i, k, j), cxAt(i, k, jc))

				idij := (j-1)*(ido-1) + i - 1
				cxSet(i, k, j, specialMul(bwd, x1, wa[idij]))

				idij = (jc-1)*(ido-1) + i - 1
				cxSet(i, k, jc, specialMul(bwd, x2, wa[idij]))
			}
		}
	}
}
