package stubs

// RPC method names.
var Deliver = "Mailbox.Deliver"

var WorkerConnect = "Broker.WorkerConnect"
var Peers = "Broker.Peers"
var WorkerDisconnect = "Broker.WorkerDisconnect"

// Envelope carries one point-to-point message between ranks.
type Envelope struct {
	Src  int
	Tag  int
	Data []byte
}

type NilResponse struct{}

type IPAddress string

type ConnectRequest struct {
	IP IPAddress
}

type ConnectResponse struct {
	Id   int
	Size int
}

type PeersRequest struct {
	Id int
}

// PeersResponse lists the mailbox address of every rank, indexed by rank.
type PeersResponse struct {
	Addrs []IPAddress
}

type RemoveRequest struct {
	Id int
}
