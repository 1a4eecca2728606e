package cpu

// EXAMPLE is a demonstration program that adds 5 and 3. Instructions occupy
// addresses 0 to 3, data 0xE and 0xF.
const EXAMPLE = `; SAP-1 example: 5 + 3
; Instructions at 00-03, data at 0E-0F.

LDA 0E   ; ACC <- RAM[E], 5
ADD 0F   ; B <- RAM[F], ACC <- ACC + B
OUT      ; OUT <- ACC, shown on the lamps
HLT      ; stop

ORG 0E   ; data follows from 0E
DB 5
DB 3
`
