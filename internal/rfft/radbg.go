package rfft

// radbg is the generic-radix backward codelet matching radfg. Unlike
// radfg it leaves its result in ch, the same convention as the
// hand-coded radb2..radb5 codelets.
func radbg(ido, ip, l1 int, cc, ch, wa []float64, csarr []complex128) {
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	CC := func(a, b, c int) float64 { return cc[a+ido*(b+ip*c)] }
	CHget := func(a, b, c int) float64 { return ch[a+ido*(b+l1*c)] }
	CHset := func(a, b, c int, v float64) { ch[a+ido*(b+l1*c)] = v }
	C1 := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	C2set := func(a, b int, v float64) { cc[a+idl1*b] = v }
	C2add := func(a, b int, v float64) { cc[a+idl1*b] += v }
	CH2 := func(a, b int) float64 { return ch[a+idl1*b] }
	CH2add := func(a, b int, v float64) { ch[a+idl1*b] += v }

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			CHset(i, k, 0, CC(i, 0, k))
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1
		for k := 0; k < l1; k++ {
			CHset(0, k, j, 2*CC(ido-1, j2, k))
			CHset(0, k, jc, 2*CC(0, j2+1, k))
		}
	}

	if ido != 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			j2 := 2*j - 1
			for k := 0; k < l1; k++ {
				ic := ido - 3
				for i := 1; i <= ido-2; i, ic = i+2, ic-2 {
					ccj1, ccjc0 := CC(i, j2+1, k), CC(ic, j2, k)
					ccj1n, ccjc0n := CC(i+1, j2+1, k), CC(ic+1, j2, k)

					CHset(i, k, j, ccj1+ccjc0)
					CHset(i, k, jc, ccj1-ccjc0)
					CHset(i+1, k, j, ccj1n-ccjc0n)
					CHset(i+1, k, jc, ccj1n+ccjc0n)
				}
			}
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		cl, c2l := csarr[l], csarr[2*l]

		for ik := 0; ik < idl1; ik++ {
			C2set(ik, l, CH2(ik, 0)+real(cl)*CH2(ik, 1)+real(c2l)*CH2(ik, 2))
			C2set(ik, lc, imag(cl)*CH2(ik, ip-1)+imag(c2l)*CH2(ik, ip-2))
		}

		iang := 2 * l
		for j, jc := 3, ip-3; j < ipph; j, jc = j+1, jc-1 {
			iang += l
			if iang >= ip {
				iang -= ip
			}
			w := csarr[iang]

			for ik := 0; ik < idl1; ik++ {
				C2add(ik, l, real(w)*CH2(ik, j))
				C2add(ik, lc, imag(w)*CH2(ik, jc))
			}
		}
	}

	for j := 1; j < ipph; j++ {
		for ik := 0; ik < idl1; ik++ {
			CH2add(ik, 0, CH2(ik, j))
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			t1, t2 := C1(0, k, j), C1(0, k, jc)
			CHset(0, k, j, t1-t2)
			CHset(0, k, jc, t1+t2)
		}
	}

	if ido != 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			for k := 0; k < l1; k++ {
				for i := 1; i <= ido-2; i += 2 {
					a, b := C1(i, k, j), C1(i+1, k, jc)
					c, d := C1(i+1, k, j), C1(i, k, jc)

					CHset(i, k, j, a-b)
					CHset(i, k, jc, a+b)
					CHset(i+1, k, j, c+d)
					CHset(i+1, k, jc, c-d)
				}
			}
		}
	}

	if ido == 1 {
		return
	}

	for j := 1; j < ip; j++ {
		is := (j - 1) * (ido - 1)
		for k := 0; k < l1; k++ {
			idij := is
			for i := 1; i <= ido-2; i += 2 {
				t1, t2 := CHget(i, k, j), CHget(i+1, k, j)
				CHset(i, k, j, wa[idij]*t1-wa[idij+1]*t2)
				CHset(i+1, k, j, wa[idij]*t2+wa[idij+1]*t1)
				idij += 2
			}
		}
	}
}
