package platform

import (
	"runtime"

	"k8s.io/klog/v2"
)

// DetectHost returns the raw OS and architecture reported by the host.
// Where uname(2) is available its sysname and machine fields are used,
// otherwise the values the binary was compiled for.
func DetectHost() Host {
	h, err := unameHost()
	if err != nil {
		klog.V(2).Infof("uname unavailable, using runtime platform %s/%s: %v", runtime.GOOS, runtime.GOARCH, err)
		return runtimeHost()
	}
	if h.OS == "" || h.Arch == "" {
		rt := runtimeHost()
		if h.OS == "" {
			h.OS = rt.OS
		}
		if h.Arch == "" {
			h.Arch = rt.Arch
		}
	}
	klog.V(4).Infof("Detected host: os=%s arch=%s", h.OS, h.Arch)
	return h
}

func runtimeHost() Host {
	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
}
