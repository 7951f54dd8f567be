// Package refvec loads published reference vectors from YAML fixtures and
// offers the comparison helpers the package tests share.
//
// A fixture file is a YAML sequence of vectors:
//
//	- name: nut00a
//	  date: [2400000.5, 53736.0]
//	  tol: 1.0e-13
//	  values:
//	    dpsi: -0.9630909107115518431e-5
//	  matrices:
//	    rbpn: [[...], [...], [...]]
package refvec
