// Package bcserve is an optional remote bitcode emission service: a build
// farm node posts a module descriptor over HTTP/3 and gets back the
// encoded .bc body in the response, so the bitstream packing step can be
// offloaded from a compiler host that only wants to produce LLVM IR in
// memory. The HTTP/3 transport setup is ported from
// internal/runtime/netstack/http3.go's TLS-1.3-enforcing constructors.
package bcserve

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"

	quic "github.com/quic-go/quic-go"
	http3 "github.com/quic-go/quic-go/http3"
)

// EmitFunc compiles a module descriptor body into an encoded bitcode
// buffer. The server is agnostic to the descriptor's shape; it only owns
// request plumbing and TLS/QUIC setup.
type EmitFunc func(descriptor []byte) ([]byte, error)

// Server wraps an http3.Server lifecycle around a single /emit endpoint
// backed by an EmitFunc.
type Server struct {
	pc    net.PacketConn
	srv   *http3.Server
	close func() error
	errC  chan error
	addr  string
}

// Options configures the underlying QUIC transport.
type Options struct {
	MaxIdleTimeout  time.Duration
	KeepAlivePeriod time.Duration
}

func enforceTLS13(tlsCfg *tls.Config) *tls.Config {
	if tlsCfg == nil {
		return &tls.Config{MinVersion: tls.VersionTLS13, NextProtos: []string{"h3"}}
	}

	if tlsCfg.MinVersion == 0 || tlsCfg.MinVersion < tls.VersionTLS13 {
		c := tlsCfg.Clone()
		c.MinVersion = tls.VersionTLS13

		if len(c.NextProtos) == 0 {
			c.NextProtos = []string{"h3"}
		}

		return c
	}

	return tlsCfg
}

// NewServer configures a server for addr that serves emit on POST /emit,
// reading the request body as a module descriptor and writing the encoded
// bitcode bytes (or a 400 with the error text) as the response. The socket
// is bound by Start.
func NewServer(addr string, tlsCfg *tls.Config, emit EmitFunc, opts Options) *Server {
	mux := newMux(emit)

	qc := &quic.Config{}
	if opts.MaxIdleTimeout > 0 {
		qc.MaxIdleTimeout = opts.MaxIdleTimeout
	}

	if opts.KeepAlivePeriod > 0 {
		qc.KeepAlivePeriod = opts.KeepAlivePeriod
	}

	srv := &http3.Server{Addr: addr, TLSConfig: enforceTLS13(tlsCfg), Handler: mux, QUICConfig: qc}

	return &Server{srv: srv, addr: addr, errC: make(chan error, 1)}
}

// newMux builds the /emit handler in isolation from the HTTP/3 transport
// setup, so its request/response logic can be exercised with a plain
// net/http/httptest server.
func newMux(emit EmitFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/emit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}

		buf, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out, err := emit(buf)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/x-llvm-bc")
		_, _ = w.Write(out)
	})

	return mux
}

// Start begins serving on an ephemeral UDP port if addr ends in ":0"; the
// actual bound address is returned.
func (s *Server) Start() (string, error) {
	var err error

	s.pc, err = net.ListenPacket("udp", s.addr)
	if err != nil {
		return "", err
	}

	realAddr := s.pc.LocalAddr().String()
	done := make(chan struct{})

	go func() {
		if err := s.srv.Serve(s.pc); err != nil {
			select {
			case s.errC <- err:
			default:
			}
		}

		close(done)
	}()

	s.close = func() error {
		_ = s.pc.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
		}

		return nil
	}

	return realAddr, nil
}

// Stop closes the listener and waits briefly for the serve loop to exit.
func (s *Server) Stop() error {
	if s.close != nil {
		return s.close()
	}

	return nil
}

// Error returns a non-blocking channel receiving the first serve error.
func (s *Server) Error() <-chan error {
	if s == nil || s.errC == nil {
		ch := make(chan error)
		close(ch)

		return ch
	}

	return s.errC
}

// Client returns an http.Client that speaks HTTP/3 to a Server.
func Client(tlsCfg *tls.Config, timeout time.Duration) *http.Client {
	tr := &http3.Transport{TLSClientConfig: enforceTLS13(tlsCfg)}
	return &http.Client{Transport: tr, Timeout: timeout}
}

// Shutdown closes the HTTP/3 round tripper if c was built by Client.
func Shutdown(c *http.Client) {
	if tr, ok := c.Transport.(*http3.Transport); ok {
		_ = tr.Close()
	}
}
