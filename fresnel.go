package roadgeom

import (
	"math"
)

// Rational approximations of the Fresnel integrals by W. J. Cody, "Chebyshev
// approximations for the Fresnel integrals", Mathematics of Computation 22
// (1968). Each table holds the coefficients of a polynomial in t⁴ (regions 1
// and 2) or t⁻⁴ (regions 3 to 5), lowest order first.
var (
	fresnelCN1 = [...]float64{9.999999999999999421e-01, -1.994608988261842706e-01, 1.761939525434914045e-02, -5.280796513726226960e-04, 5.477113856826871660e-06}
	fresnelCD1 = [...]float64{1.0, 4.727921120104532689e-02, 1.099572150256418851e-03, 1.552378852769941331e-05, 1.189389014228757184e-07}
	fresnelCN2 = [...]float64{1.00000000000111043640e+00, -2.07073360335323894245e-01, 1.91870279431746926505e-02, -6.71376034694922109230e-04, 1.02365435056105864908e-05, -5.68293310121870728343e-08}
	fresnelCD2 = [...]float64{1.0, 3.96667496952323433510e-02, 7.88905245052359907842e-04, 1.01344630866749406081e-05, 8.77945377892369265356e-08, 4.41701374065009620393e-10}
	fresnelSN1 = [...]float64{5.2359877559829887021e-01, -7.0748991514452302596e-02, 3.8778212346368287939e-03, -8.4555728435277680591e-05, 6.7174846662514086196e-07}
	fresnelSD1 = [...]float64{1.0, 4.1122315114238422205e-02, 8.1709194215213447204e-04, 9.6269087593903403370e-06, 5.9528122767840998345e-08}
	fresnelSN2 = [...]float64{5.23598775598344165913e-01, -7.37766914010191323867e-02, 4.30730526504366510217e-03, -1.09540023911434994566e-04, 1.28531043742724820610e-06, -5.76765815593088804567e-09}
	fresnelSD2 = [...]float64{1.0, 3.53398342167472162540e-02, 6.18224620195473216538e-04, 6.87086265718620117905e-06, 5.03090581246612375866e-08, 2.05539124458579596075e-10}
	fresnelFN3 = [...]float64{3.1830975293580985290e-01, 1.2226000551672961219e+01, 1.2924886131901657025e+02, 4.3886367156695547655e+02, 4.1466722177958961672e+02, 5.6771463664185116454e+01}
	fresnelFD3 = [...]float64{1.0, 3.8713003365583442831e+01, 4.1674359830705629745e+02, 1.4740030733966610568e+03, 1.5371675584895759916e+03, 2.9113088788847831515e+02}
	fresnelFN4 = [...]float64{3.183098818220169217e-01, 1.958839410219691002e+01, 3.398371349269842400e+02, 1.930076407867157531e+03, 3.091451615744296552e+03, 7.177032493651399590e+02}
	fresnelFD4 = [...]float64{1.0, 6.184271381728873709e+01, 1.085350675006501251e+03, 6.337471558511437898e+03, 1.093342489888087888e+04, 3.361216991805511494e+03}
	fresnelFN5 = [...]float64{-9.675460329952532343e-02, -2.431275407194161683e+01, -1.947621998306889176e+03, -6.059852197160773639e+04, -7.076806952837779823e+05, -2.417656749061154155e+06, -7.834914590078311336e+05}
	fresnelFD5 = [...]float64{1.0, 2.548289012949732752e+02, 2.099761536857815105e+04, 6.924122509827708985e+05, 9.178823229918143780e+06, 4.292733255630186679e+07, 4.803294184260528342e+07}
	fresnelGN3 = [...]float64{1.013206188102747985e-01, 4.445338275505123778e+00, 5.311228134809894481e+01, 1.991828186789025318e+02, 1.962320379716626191e+02, 2.054214324985006303e+01}
	fresnelGD3 = [...]float64{1.0, 4.539250196736893605e+01, 5.835905757164290666e+02, 2.544731331818221034e+03, 3.481121478565452837e+03, 1.013794833960028555e+03}
	fresnelGN4 = [...]float64{1.01321161761804586e-01, 7.11205001789782823e+00, 1.40959617911315524e+02, 9.08311749529593938e+02, 1.59268006085353864e+03, 3.13330163068755950e+02}
	fresnelGD4 = [...]float64{1.0, 7.17128596939302198e+01, 1.49051922797329229e+03, 1.06729678030583897e+04, 2.41315567213369742e+04, 1.15149832376260604e+04}
	fresnelGN5 = [...]float64{-1.53989733819769316e-01, -4.31710157823357568e+01, -3.87754141746378493e+03, -1.35678867813756347e+05, -1.77758950838029676e+06, -6.66907061668636416e+06, -1.72590224654836845e+06}
	fresnelGD5 = [...]float64{1.0, 2.86733194975899483e+02, 2.69183180396242536e+04, 1.02878693056687506e+06, 1.62095600500231646e+07, 9.38695862531635179e+07, 1.40622441123580005e+08}
)

// poly evaluates Σ coef[i]·xⁱ with Horner's scheme.
func poly(coef []float64, x float64) float64 {
	var acc float64
	for i := len(coef) - 1; i >= 0; i-- {
		acc = acc*x + coef[i]
	}
	return acc
}

// Fresnel returns the Fresnel integrals
//
//	C(x) = ∫₀ˣ cos(πt²/2) dt
//	S(x) = ∫₀ˣ sin(πt²/2) dt
//
// Both are odd functions and approach 0.5 as x grows.
func Fresnel(x float64) (c, s float64) {
	t := math.Abs(x)
	switch {
	case math.IsInf(t, 1):
		c, s = 0.5, 0.5
	case t < 1.2:
		t4 := t * t * t * t
		c = t * poly(fresnelCN1[:], t4) / poly(fresnelCD1[:], t4)
		s = t * t * t * poly(fresnelSN1[:], t4) / poly(fresnelSD1[:], t4)
	case t < 1.6:
		t4 := t * t * t * t
		c = t * poly(fresnelCN2[:], t4) / poly(fresnelCD2[:], t4)
		s = t * t * t * poly(fresnelSN2[:], t4) / poly(fresnelSD2[:], t4)
	case t < 1.9:
		u := 1 / (t * t * t * t)
		f := poly(fresnelFN3[:], u) / poly(fresnelFD3[:], u) / t
		g := poly(fresnelGN3[:], u) / poly(fresnelGD3[:], u) / (t * t * t)
		c, s = fresnelAux(t, f, g)
	case t < 2.4:
		u := 1 / (t * t * t * t)
		f := poly(fresnelFN4[:], u) / poly(fresnelFD4[:], u) / t
		g := poly(fresnelGN4[:], u) / poly(fresnelGD4[:], u) / (t * t * t)
		c, s = fresnelAux(t, f, g)
	default:
		u := 1 / (t * t * t * t)
		f := (1/math.Pi + u*poly(fresnelFN5[:], u)/poly(fresnelFD5[:], u)) / t
		g := (1/(math.Pi*math.Pi) + u*poly(fresnelGN5[:], u)/poly(fresnelGD5[:], u)) / (t * t * t)
		c, s = fresnelAux(t, f, g)
	}
	if x < 0 {
		return -c, -s
	}
	return c, s
}

// fresnelAux combines the auxiliary functions f and g into C and S.
func fresnelAux(t, f, g float64) (c, s float64) {
	sin, cos := math.Sincos(math.Pi * t * t / 2)
	c = 0.5 + f*sin - g*cos
	s = 0.5 - f*cos - g*sin
	return c, s
}
