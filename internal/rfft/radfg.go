package rfft

// radfg is the generic-radix forward codelet for any factor not
// hand-coded in radf.go. It works in place on cc, using ch as
// scratch, and (like cfft's passg) leaves its result in cc rather
// than ch — callers must not toggle the active buffer after calling
// it. csarr holds the ip primitive-root twiddle factors for this
// factor, built alongside its wa table.
func radfg(ido, ip, l1 int, cc, ch, wa []float64, csarr []complex128) {
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	C1 := func(a, b, c int) float64 { return cc[a+ido*(b+l1*c)] }
	C1set := func(a, b, c int, v float64) { cc[a+ido*(b+l1*c)] = v }
	C2 := func(a, b int) float64 { return cc[a+idl1*b] }
	CH2set := func(a, b int, v float64) { ch[a+idl1*b] = v }
	CH2add := func(a, b int, v float64) { ch[a+idl1*b] += v }
	CHget := func(a, b, c int) float64 { return ch[a+ido*(b+l1*c)] }
	CCset := func(a, b, c int, v float64) { cc[a+ido*(b+ip*c)] = v }

	if ido > 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			is := (j - 1) * (ido - 1)
			is2 := (jc - 1) * (ido - 1)

			for k := 0; k < l1; k++ {
				idij, idij2 := is, is2

				for i := 1; i <= ido-2; i += 2 {
					t1, t2 := C1(i, k, j), C1(i+1, k, j)
					t3, t4 := C1(i, k, jc), C1(i+1, k, jc)

					x1 := wa[idij]*t1 + wa[idij+1]*t2
					x2 := wa[idij]*t2 - wa[idij+1]*t1
					x3 := wa[idij2]*t3 + wa[idij2+1]*t4
					x4 := wa[idij2]*t4 - wa[idij2+1]*t3

					C1set(i, k, j, x1+x3)
					C1set(i, k, jc, x2-x4)
					C1set(i+1, k, j, x2+x4)
					C1set(i+1, k, jc, x3-x1)

					idij += 2
					idij2 += 2
				}
			}
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			t1, t2 := C1(0, k, j), C1(0, k, jc)
			C1set(0, k, j, t1+t2)
			C1set(0, k, jc, t2-t1)
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		cl, c2l := csarr[l], csarr[2*l]

		for ik := 0; ik < idl1; ik++ {
			CH2set(ik, l, C2(ik, 0)+real(cl)*C2(ik, 1)+real(c2l)*C2(ik, 2))
			CH2set(ik, lc, imag(cl)*C2(ik, ip-1)+imag(c2l)*C2(ik, ip-2))
		}

		iang := 2 * l
		for j, jc := 3, ip-3; j < ipph; j, jc = j+1, jc-1 {
			iang += l
			if iang >= ip {
				iang -= ip
			}
			w := csarr[iang]

			for ik := 0; ik < idl1; ik++ {
				CH2add(ik, l, real(w)*C2(ik, j))
				CH2add(ik, lc, imag(w)*C2(ik, jc))
			}
		}
	}

	for ik := 0; ik < idl1; ik++ {
		CH2set(ik, 0, C2(ik, 0))
	}
	for j := 1; j < ipph; j++ {
		for ik := 0; ik < idl1; ik++ {
			CH2add(ik, 0, C2(ik, j))
		}
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			CCset(i, 0, k, CHget(i, k, 0))
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1
		for k := 0; k < l1; k++ {
			CCset(ido-1, j2, k, CHget(0, k, j))
			CCset(0, j2+1, k, CHget(0, k, jc))
		}
	}

	if ido == 1 {
		return
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1
		for k := 0; k < l1; k++ {
			ic := ido - 3
			for i := 1; i <= ido-2; i, ic = i+2, ic-2 {
				chij, chijc := CHget(i, k, j), CHget(i, k, jc)
				ch1j, ch1jc := CHget(i+1, k, j), CHget(i+1, k, jc)

				CCset(i, j2+1, k, chij+chijc)
				CCset(ic, j2, k, chij-chijc)
				CCset(i+1, j2+1, k, ch1j+ch1jc)
				CCset(ic+1, j2, k, ch1jc-ch1j)
			}
		}
	}
}
