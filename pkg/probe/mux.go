package probe

// MUX tables describe which channels share a multiplexed ADC during
// readout. Each probe family has one canonical table, encoded like the
// other SpikeGLX tags: a "(nADC,chansPerADC)" header followed by one
// group per sample slot listing the channels digitized simultaneously,
// one per ADC. The strings below are the fixed tables the acquisition
// software writes for each readout ASIC; ADC pairs serve adjacent
// channel pairs, so slot 0 of the NP1.0 ASIC reads 0 1 24 25 48 49 and
// so on across all 32 converters.
const muxNP1 = "(32,12)" +
	"(0 1 24 25 48 49 72 73 96 97 120 121 144 145 168 169 192 193 216 217 240 241 264 265 288 289 312 313 336 337 360 361)" +
	"(2 3 26 27 50 51 74 75 98 99 122 123 146 147 170 171 194 195 218 219 242 243 266 267 290 291 314 315 338 339 362 363)" +
	"(4 5 28 29 52 53 76 77 100 101 124 125 148 149 172 173 196 197 220 221 244 245 268 269 292 293 316 317 340 341 364 365)" +
	"(6 7 30 31 54 55 78 79 102 103 126 127 150 151 174 175 198 199 222 223 246 247 270 271 294 295 318 319 342 343 366 367)" +
	"(8 9 32 33 56 57 80 81 104 105 128 129 152 153 176 177 200 201 224 225 248 249 272 273 296 297 320 321 344 345 368 369)" +
	"(10 11 34 35 58 59 82 83 106 107 130 131 154 155 178 179 202 203 226 227 250 251 274 275 298 299 322 323 346 347 370 371)" +
	"(12 13 36 37 60 61 84 85 108 109 132 133 156 157 180 181 204 205 228 229 252 253 276 277 300 301 324 325 348 349 372 373)" +
	"(14 15 38 39 62 63 86 87 110 111 134 135 158 159 182 183 206 207 230 231 254 255 278 279 302 303 326 327 350 351 374 375)" +
	"(16 17 40 41 64 65 88 89 112 113 136 137 160 161 184 185 208 209 232 233 256 257 280 281 304 305 328 329 352 353 376 377)" +
	"(18 19 42 43 66 67 90 91 114 115 138 139 162 163 186 187 210 211 234 235 258 259 282 283 306 307 330 331 354 355 378 379)" +
	"(20 21 44 45 68 69 92 93 116 117 140 141 164 165 188 189 212 213 236 237 260 261 284 285 308 309 332 333 356 357 380 381)" +
	"(22 23 46 47 70 71 94 95 118 119 142 143 166 167 190 191 214 215 238 239 262 263 286 287 310 311 334 335 358 359 382 383)"

const muxNP2 = "(24,16)" +
	"(0 1 32 33 64 65 96 97 128 129 160 161 192 193 224 225 256 257 288 289 320 321 352 353)" +
	"(2 3 34 35 66 67 98 99 130 131 162 163 194 195 226 227 258 259 290 291 322 323 354 355)" +
	"(4 5 36 37 68 69 100 101 132 133 164 165 196 197 228 229 260 261 292 293 324 325 356 357)" +
	"(6 7 38 39 70 71 102 103 134 135 166 167 198 199 230 231 262 263 294 295 326 327 358 359)" +
	"(8 9 40 41 72 73 104 105 136 137 168 169 200 201 232 233 264 265 296 297 328 329 360 361)" +
	"(10 11 42 43 74 75 106 107 138 139 170 171 202 203 234 235 266 267 298 299 330 331 362 363)" +
	"(12 13 44 45 76 77 108 109 140 141 172 173 204 205 236 237 268 269 300 301 332 333 364 365)" +
	"(14 15 46 47 78 79 110 111 142 143 174 175 206 207 238 239 270 271 302 303 334 335 366 367)" +
	"(16 17 48 49 80 81 112 113 144 145 176 177 208 209 240 241 272 273 304 305 336 337 368 369)" +
	"(18 19 50 51 82 83 114 115 146 147 178 179 210 211 242 243 274 275 306 307 338 339 370 371)" +
	"(20 21 52 53 84 85 116 117 148 149 180 181 212 213 244 245 276 277 308 309 340 341 372 373)" +
	"(22 23 54 55 86 87 118 119 150 151 182 183 214 215 246 247 278 279 310 311 342 343 374 375)" +
	"(24 25 56 57 88 89 120 121 152 153 184 185 216 217 248 249 280 281 312 313 344 345 376 377)" +
	"(26 27 58 59 90 91 122 123 154 155 186 187 218 219 250 251 282 283 314 315 346 347 378 379)" +
	"(28 29 60 61 92 93 124 125 156 157 188 189 220 221 252 253 284 285 316 317 348 349 380 381)" +
	"(30 31 62 63 94 95 126 127 158 159 190 191 222 223 254 255 286 287 318 319 350 351 382 383)"

const muxNP1200 = "(32,4)" +
	"(0 1 8 9 16 17 24 25 32 33 40 41 48 49 56 57 64 65 72 73 80 81 88 89 96 97 104 105 112 113 120 121)" +
	"(2 3 10 11 18 19 26 27 34 35 42 43 50 51 58 59 66 67 74 75 82 83 90 91 98 99 106 107 114 115 122 123)" +
	"(4 5 12 13 20 21 28 29 36 37 44 45 52 53 60 61 68 69 76 77 84 85 92 93 100 101 108 109 116 117 124 125)" +
	"(6 7 14 15 22 23 30 31 38 39 46 47 54 55 62 63 70 71 78 79 86 87 94 95 102 103 110 111 118 119 126 127)"

const muxNXT = "(16,8)" +
	"(0 1 16 17 32 33 48 49 64 65 80 81 96 97 112 113)" +
	"(2 3 18 19 34 35 50 51 66 67 82 83 98 99 114 115)" +
	"(4 5 20 21 36 37 52 53 68 69 84 85 100 101 116 117)" +
	"(6 7 22 23 38 39 54 55 70 71 86 87 102 103 118 119)" +
	"(8 9 24 25 40 41 56 57 72 73 88 89 104 105 120 121)" +
	"(10 11 26 27 42 43 58 59 74 75 90 91 106 107 122 123)" +
	"(12 13 28 29 44 45 60 61 76 77 92 93 108 109 124 125)" +
	"(14 15 30 31 46 47 62 63 78 79 94 95 110 111 126 127)"

// muxFamilies assigns each catalog part number to its readout ASIC table.
var muxFamilies = map[string]string{
	"3A":               muxNP1,
	"PRB_1_4_0480_1":   muxNP1,
	"PRB_1_4_0480_1_C": muxNP1,
	"NP1010":           muxNP1,
	"NP1011":           muxNP1,
	"NP1012":           muxNP1,
	"NP1013":           muxNP1,
	"NP1015":           muxNP1,
	"NP1016":           muxNP1,
	"NP1017":           muxNP1,
	"NP1020":           muxNP1,
	"NP1021":           muxNP1,
	"NP1022":           muxNP1,
	"NP1030":           muxNP1,
	"NP1031":           muxNP1,
	"NP1032":           muxNP1,
	"NP1100":           muxNP1,
	"NP1110":           muxNP1,
	"NP1120":           muxNP1,
	"NP1121":           muxNP1,
	"NP1122":           muxNP1,
	"NP1123":           muxNP1,
	"NP1300":           muxNP1,

	"PRB2_1_4_0480_1": muxNP2,
	"PRB2_1_2_0640_0": muxNP2,
	"NP2000":          muxNP2,
	"NP2003":          muxNP2,
	"NP2004":          muxNP2,
	"PRB2_4_2_0640_0": muxNP2,
	"NP2010":          muxNP2,
	"NP2013":          muxNP2,
	"NP2014":          muxNP2,

	"NP1200":  muxNP1200,
	"NXT3000": muxNXT,
}

// LookupMuxTable returns the canonical MUX table string for a probe part
// number. The second return is false for unknown part numbers; callers
// treat that as a warning, not an error, and emit an empty table line.
func LookupMuxTable(partNumber string) (string, bool) {
	s, ok := muxFamilies[partNumber]
	return s, ok
}
