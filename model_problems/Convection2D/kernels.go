package Convection2D

/*
OKL sources for the device backend. One mode per @outer block, one
vertical level per @inner item; the solve kernel runs one lane per mode
since the sweeps are sequential in k. NZ, NN, A, DZ, OODZ2 and PI come
from the generated preamble.

The expressions and their evaluation order mirror the host evaluators
term for term, so host and device trajectories agree to roundoff.
Double diffusive runs compile extended variants of the linear and
update kernels; the nonlinear convolution has no solute terms in
either.
*/

func (db *DeviceBackend) kernelSources() map[string]string {
	return map[string]string{
		"linearDerivatives":    db.linearKernelSource(),
		"nonlinearDerivatives": nonlinearKernelSource,
		"updateFields":         db.updateKernelSource(),
		"solvePsi":             solveKernelSource,
	}
}

func (db *DeviceBackend) linearKernelSource() string {
	if db.c.DDC {
		return `
@kernel void linearDerivatives(const int start,
                               const int linearized,
                               const real_t Ra,
                               const real_t Pr,
                               const real_t tmpGrad,
                               const real_t RaXi,
                               const real_t tau,
                               const real_t xiGrad,
                               const real_t * tmp,
                               const real_t * omg,
                               const real_t * psi,
                               const real_t * xi,
                               real_t * dTmpdt,
                               real_t * dOmgdt,
                               real_t * dXidt) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int k = 0; k < NZ; ++k; @inner) {
      if (n >= start && k >= 1 && k < NZ - 1) {
        const int i = n * NZ + k;
        const real_t kn = n * PI / A;
        dTmpdt[i] = (tmp[i + 1] - 2.0 * tmp[i] + tmp[i - 1]) * OODZ2 - kn * kn * tmp[i];
        dXidt[i] = tau * ((xi[i + 1] - 2.0 * xi[i] + xi[i - 1]) * OODZ2 - kn * kn * xi[i]);
        if (linearized) {
          dXidt[i] += -xiGrad * kn * psi[i];
          dTmpdt[i] += -tmpGrad * kn * psi[i];
        }
        dOmgdt[i] = Pr * ((omg[i + 1] - 2.0 * omg[i] + omg[i - 1]) * OODZ2 - kn * kn * omg[i] + Ra * kn * tmp[i]);
        dOmgdt[i] += -RaXi * tau * Pr * kn * xi[i];
      }
    }
  }
}
`
	}
	return `
@kernel void linearDerivatives(const int start,
                               const int linearized,
                               const real_t Ra,
                               const real_t Pr,
                               const real_t tmpGrad,
                               const real_t * tmp,
                               const real_t * omg,
                               const real_t * psi,
                               real_t * dTmpdt,
                               real_t * dOmgdt) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int k = 0; k < NZ; ++k; @inner) {
      if (n >= start && k >= 1 && k < NZ - 1) {
        const int i = n * NZ + k;
        const real_t kn = n * PI / A;
        dTmpdt[i] = (tmp[i + 1] - 2.0 * tmp[i] + tmp[i - 1]) * OODZ2 - kn * kn * tmp[i];
        if (linearized) {
          dTmpdt[i] += -tmpGrad * kn * psi[i];
        }
        dOmgdt[i] = Pr * ((omg[i + 1] - 2.0 * omg[i] + omg[i - 1]) * OODZ2 - kn * kn * omg[i] + Ra * kn * tmp[i]);
      }
    }
  }
}
`
}

const nonlinearKernelSource = `
@kernel void nonlinearDerivatives(const real_t * tmp,
                                  const real_t * omg,
                                  const real_t * psi,
                                  real_t * dTmpdt,
                                  real_t * dOmgdt) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int k = 0; k < NZ; ++k; @inner) {
      if (k >= 1 && k < NZ - 1) {
        if (n == 0) {
          real_t acc = dTmpdt[k];
          for (int m = 1; m < NN; ++m) {
            const int im = m * NZ + k;
            acc += -PI / (2.0 * A) * m *
                (((psi[im + 1] - psi[im - 1]) / (2.0 * DZ)) * tmp[im] +
                 ((tmp[im + 1] - tmp[im - 1]) / (2.0 * DZ)) * psi[im]);
          }
          dTmpdt[k] = acc;
        } else {
          const int in = n * NZ + k;
          real_t accT = dTmpdt[in];
          real_t accW = dOmgdt[in];
          accT += -n * PI / A * psi[in] * ((tmp[k + 1] - tmp[k - 1]) / (2.0 * DZ));
          for (int m = 1; m < n; ++m) {
            const int o = n - m;
            const int im = m * NZ + k;
            const int io = o * NZ + k;
            accT += -PI / (2.0 * A) *
                (-m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * tmp[im] +
                 o * ((tmp[im + 1] - tmp[im - 1]) / (2.0 * DZ)) * psi[io]);
            accW += -PI / (2.0 * A) *
                (-m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * omg[im] +
                 o * ((omg[im + 1] - omg[im - 1]) / (2.0 * DZ)) * psi[io]);
          }
          for (int m = n + 1; m < NN; ++m) {
            const int o = m - n;
            const int im = m * NZ + k;
            const int io = o * NZ + k;
            accT += -PI / (2.0 * A) *
                (m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * tmp[im] +
                 o * ((tmp[im + 1] - tmp[im - 1]) / (2.0 * DZ)) * psi[io]);
            accW += -PI / (2.0 * A) *
                (m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * omg[im] +
                 o * ((omg[im + 1] - omg[im - 1]) / (2.0 * DZ)) * psi[io]);
          }
          for (int m = 1; m + n < NN; ++m) {
            const int o = n + m;
            const int im = m * NZ + k;
            const int io = o * NZ + k;
            accT += -PI / (2.0 * A) *
                (m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * tmp[im] +
                 o * ((tmp[im + 1] - tmp[im - 1]) / (2.0 * DZ)) * psi[io]);
            accW += PI / (2.0 * A) *
                (m * ((psi[io + 1] - psi[io - 1]) / (2.0 * DZ)) * omg[im] +
                 o * ((omg[im + 1] - omg[im - 1]) / (2.0 * DZ)) * psi[io]);
          }
          dTmpdt[in] = accT;
          dOmgdt[in] = accW;
        }
      }
    }
  }
}
`

func (db *DeviceBackend) updateKernelSource() string {
	if db.c.DDC {
		return `
@kernel void updateFields(const real_t f,
                          const real_t dt,
                          real_t * tmp,
                          real_t * omg,
                          real_t * xi,
                          const real_t * dTmpdtC,
                          const real_t * dTmpdtP,
                          const real_t * dOmgdtC,
                          const real_t * dOmgdtP,
                          const real_t * dXidtC,
                          const real_t * dXidtP) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int k = 0; k < NZ; ++k; @inner) {
      const int i = n * NZ + k;
      tmp[i] += ((2.0 + f) * dTmpdtC[i] - f * dTmpdtP[i]) * dt / 2.0;
      omg[i] += ((2.0 + f) * dOmgdtC[i] - f * dOmgdtP[i]) * dt / 2.0;
      xi[i] += ((2.0 + f) * dXidtC[i] - f * dXidtP[i]) * dt / 2.0;
    }
  }
}
`
	}
	return `
@kernel void updateFields(const real_t f,
                          const real_t dt,
                          real_t * tmp,
                          real_t * omg,
                          const real_t * dTmpdtC,
                          const real_t * dTmpdtP,
                          const real_t * dOmgdtC,
                          const real_t * dOmgdtP) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int k = 0; k < NZ; ++k; @inner) {
      const int i = n * NZ + k;
      tmp[i] += ((2.0 + f) * dTmpdtC[i] - f * dTmpdtP[i]) * dt / 2.0;
      omg[i] += ((2.0 + f) * dOmgdtC[i] - f * dOmgdtP[i]) * dt / 2.0;
    }
  }
}
`
}

const solveKernelSource = `
@kernel void solvePsi(const real_t * omg,
                      real_t * psi,
                      const real_t * sub,
                      const real_t * wk1,
                      const real_t * wk2) {
  for (int n = 0; n < NN; ++n; @outer) {
    for (int j = 0; j < 1; ++j; @inner) {
      const int off = n * NZ;
      psi[off] = omg[off] * wk1[off];
      for (int k = 1; k < NZ; ++k) {
        psi[off + k] = (omg[off + k] - sub[k] * psi[off + k - 1]) * wk1[off + k];
      }
      for (int k = NZ - 2; k >= 0; --k) {
        psi[off + k] -= wk2[off + k] * psi[off + k + 1];
      }
    }
  }
}
`
